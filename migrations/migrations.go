// Package migrations embeds the SQL migration files so the binary can run
// them at startup without shipping the files separately.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
