// Package migrations embeds the Postgres schema of the dev backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
