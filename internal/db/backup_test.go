package db_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/db"
)

func TestBackupRoundTrip(t *testing.T) {
	t.Parallel()

	storePath := filepath.Join(t.TempDir(), "caltrack.db")
	if err := os.WriteFile(storePath, []byte("store contents"), 0o644); err != nil {
		t.Fatalf("write store file: %v", err)
	}

	backupPath := filepath.Join(t.TempDir(), "backups", "caltrack-1.db")
	info, err := db.CreateBackup(storePath, backupPath)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes == 0 {
		t.Fatalf("backup info incomplete: %+v", info)
	}
	if _, err := os.Stat(backupPath + ".sha256"); err != nil {
		t.Fatalf("checksum file: %v", err)
	}

	restorePath := filepath.Join(t.TempDir(), "restored.db")
	if err := db.RestoreBackup(backupPath, restorePath, false); err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	restored, err := os.ReadFile(restorePath)
	if err != nil {
		t.Fatalf("read restored file: %v", err)
	}
	if string(restored) != "store contents" {
		t.Fatalf("restored contents = %q", restored)
	}
}

func TestRestoreRefusesExistingStoreWithoutForce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storePath := filepath.Join(dir, "caltrack.db")
	if err := os.WriteFile(storePath, []byte("current"), 0o644); err != nil {
		t.Fatalf("write store file: %v", err)
	}
	backupPath := filepath.Join(dir, "backup.db")
	if _, err := db.CreateBackup(storePath, backupPath); err != nil {
		t.Fatalf("create backup: %v", err)
	}

	err := db.RestoreBackup(backupPath, storePath, false)
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected overwrite refusal, got: %v", err)
	}
	if err := db.RestoreBackup(backupPath, storePath, true); err != nil {
		t.Fatalf("forced restore: %v", err)
	}
}

func TestRestoreDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storePath := filepath.Join(dir, "caltrack.db")
	if err := os.WriteFile(storePath, []byte("current"), 0o644); err != nil {
		t.Fatalf("write store file: %v", err)
	}
	backupPath := filepath.Join(dir, "backup.db")
	if _, err := db.CreateBackup(storePath, backupPath); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := os.WriteFile(backupPath, []byte("tampered"), 0o644); err != nil {
		t.Fatalf("tamper with backup: %v", err)
	}

	err := db.RestoreBackup(backupPath, filepath.Join(dir, "restored.db"), false)
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got: %v", err)
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storePath := filepath.Join(dir, "caltrack.db")
	if err := os.WriteFile(storePath, []byte("current"), 0o644); err != nil {
		t.Fatalf("write store file: %v", err)
	}
	backupDir := filepath.Join(dir, "backups")
	for _, name := range []string{"caltrack-1.db", "caltrack-2.db"} {
		if _, err := db.CreateBackup(storePath, filepath.Join(backupDir, name)); err != nil {
			t.Fatalf("create backup %s: %v", name, err)
		}
	}

	items, err := db.ListBackups(backupDir)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(items))
	}
	for _, it := range items {
		if it.Checksum == "" {
			t.Fatalf("backup %s missing checksum", it.Path)
		}
	}
}
