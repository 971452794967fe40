// Package migrations embeds the goose SQL migrations applied at startup and
// by the integration test helper.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
