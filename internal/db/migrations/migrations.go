// Package migrations holds the embedded schema migration files.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
