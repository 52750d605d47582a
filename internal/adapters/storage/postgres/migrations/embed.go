// Package migrations contiene el schema goose del backend Postgres.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
