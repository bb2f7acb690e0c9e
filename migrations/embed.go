// Package migrations provides embedded SQL migration files, applied by the
// migrate command and by integration test helpers.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
