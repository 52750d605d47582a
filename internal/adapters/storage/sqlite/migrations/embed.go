// Package migrations contiene el schema goose del backend SQLite local.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
