// Package migrations holds the SQL schema migrations applied at startup.
package migrations

import "embed"

// FS contains every goose migration file.
//
//go:embed *.sql
var FS embed.FS
