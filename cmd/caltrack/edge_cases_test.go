package caltrack

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/db"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/kv"
)

// seedRawDocument writes a document straight into the kv table, bypassing
// the store's sanitizing, the way an outside tool would.
func seedRawDocument(t *testing.T, path, key, doc string) {
	t.Helper()
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	ctx := context.Background()
	if err := db.ApplyMigrations(ctx, sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := kv.NewSQLite(sqldb).Set(ctx, key, []byte(doc)); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

func TestUpdateClampsNegativeCalories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	out, err := runCLI(t, "--store", path, "entry", "add", "--title", "Snack bar", "--calories", "500")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id := lastEntryID(t, out)

	if _, err := runCLI(t, "--store", path, "entry", "update", id, "--calories", "-5"); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, err = runCLI(t, "--store", path, "entry", "show", id)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Calories: 0\n") {
		t.Fatalf("expected calories clamped to 0:\n%s", out)
	}
}

func TestUpdatePatchesOnlyChangedFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	out, err := runCLI(t, "--store", path, "entry", "add",
		"--title", "Oats", "--calories", "300", "--protein", "10")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id := lastEntryID(t, out)

	if _, err := runCLI(t, "--store", path, "entry", "update", id, "--title", "Oats with milk"); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, err = runCLI(t, "--store", path, "entry", "show", id)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Title: Oats with milk", "Calories: 300", "Protein: 10g"} {
		if !strings.Contains(out, want) {
			t.Fatalf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestUpdateMissingEntryIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	out, err := runCLI(t, "--store", path, "entry", "update", "no-such-id", "--calories", "100")
	if err != nil {
		t.Fatalf("update missing id should not error: %v", err)
	}
	if !strings.Contains(out, "No entry with id no-such-id") {
		t.Fatalf("update output: %s", out)
	}
}

func TestDeleteMissingEntryIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	out, err := runCLI(t, "--store", path, "entry", "delete", "no-such-id")
	if err != nil {
		t.Fatalf("delete missing id should not error: %v", err)
	}
	if !strings.Contains(out, "No entry with id no-such-id") {
		t.Fatalf("delete output: %s", out)
	}
}

func TestImportRejectsNonArrayAndKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	if _, err := runCLI(t, "--store", path, "entry", "add", "--title", "Dal", "--calories", "180"); err != nil {
		t.Fatalf("add: %v", err)
	}

	badPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(badPath, []byte("not an array"), 0o644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}

	_, err := runCLI(t, "--store", path, "import", "--in", badPath)
	if err == nil {
		t.Fatalf("expected import of non-array to fail")
	}
	if !strings.Contains(err.Error(), "not a JSON array") {
		t.Fatalf("import error: %v", err)
	}

	out, err := runCLI(t, "--store", path, "today")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if !strings.Contains(out, "Entries: 1") {
		t.Fatalf("expected log unchanged after rejected import:\n%s", out)
	}
}

func TestInvalidDateFlagRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	_, err := runCLI(t, "--store", path, "entry", "list", "--date", "2024-02-30")
	if err == nil || !strings.Contains(err.Error(), "invalid --date") {
		t.Fatalf("expected invalid date error, got: %v", err)
	}
}

func TestInvalidMealFilterRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	_, err := runCLI(t, "--store", path, "entry", "list", "--meal", "brunch")
	if err == nil || !strings.Contains(err.Error(), "invalid --meal") {
		t.Fatalf("expected invalid meal error, got: %v", err)
	}
}

func TestEstimateEmptyHintRejected(t *testing.T) {
	_, err := runCLI(t, "estimate", "   ")
	if err == nil || !strings.Contains(err.Error(), "hint is required") {
		t.Fatalf("expected empty hint error, got: %v", err)
	}
}

func TestDoctorFlagsCorruptLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")
	seedRawDocument(t, path, "entries.v2", "{")

	out, err := runCLI(t, "--store", path, "doctor")
	if err == nil || !strings.Contains(err.Error(), "integrity issues") {
		t.Fatalf("expected doctor to flag corrupt log, got: %v", err)
	}
	if !strings.Contains(out, "Corrupt document: entries.v2") {
		t.Fatalf("doctor output: %s", out)
	}
}

func TestLegacyLogMigratesThroughCLI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")
	seedRawDocument(t, path, "entries",
		`[{"id":"old-1","date":"2024-01-05","time":"9:00 AM","title":"Poha","calories":250,"protein":6,"carbs":40,"fat":7}]`)

	out, err := runCLI(t, "--store", path, "doctor")
	if err != nil {
		t.Fatalf("doctor before migration: %v", err)
	}
	if !strings.Contains(out, "Legacy entry log present") {
		t.Fatalf("doctor should report the legacy log:\n%s", out)
	}

	out, err = runCLI(t, "--store", path, "entry", "show", "old-1")
	if err != nil {
		t.Fatalf("show migrated entry: %v", err)
	}
	if !strings.Contains(out, "Title: Poha") || !strings.Contains(out, "Fiber: 0g") {
		t.Fatalf("migrated entry output:\n%s", out)
	}

	out, err = runCLI(t, "--store", path, "doctor")
	if err != nil {
		t.Fatalf("doctor after migration: %v", err)
	}
	if strings.Contains(out, "Legacy entry log present") {
		t.Fatalf("legacy log should be gone after migration:\n%s", out)
	}
	if !strings.Contains(out, "Entries: 1") {
		t.Fatalf("doctor after migration output:\n%s", out)
	}
}

func TestDoctorReportsStaleLegacyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")
	seedRawDocument(t, path, "entries.v2",
		`[{"id":"cur-1","date":"2024-01-06","time":"8:30 AM","title":"Idli","calories":140,"protein":4,"carbs":28,"fat":1,"fiber":2}]`)
	seedRawDocument(t, path, "entries",
		`[{"id":"old-1","date":"2024-01-05","time":"9:00 AM","title":"Poha","calories":250,"protein":6,"carbs":40,"fat":7}]`)

	out, err := runCLI(t, "--store", path, "doctor")
	if err != nil {
		t.Fatalf("doctor with stale key: %v", err)
	}
	if !strings.Contains(out, "Stale legacy entry log present") {
		t.Fatalf("doctor should report the stale key:\n%s", out)
	}
	if strings.Contains(out, "the next command migrates it") {
		t.Fatalf("a superseded log must not be reported as pending migration:\n%s", out)
	}

	if _, err := runCLI(t, "--store", path, "entry", "list"); err != nil {
		t.Fatalf("list: %v", err)
	}

	out, err = runCLI(t, "--store", path, "doctor")
	if err != nil {
		t.Fatalf("doctor after cleanup: %v", err)
	}
	if strings.Contains(out, "Stale legacy entry log present") {
		t.Fatalf("stale key should be gone after a load:\n%s", out)
	}
	if !strings.Contains(out, "Entries: 1") {
		t.Fatalf("current log should be untouched:\n%s", out)
	}
}
