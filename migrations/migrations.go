// Package migrations embeds the schema so the binary can migrate without the source tree.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

// PostgresDir is the directory of Postgres inside the embedded filesystem.
const PostgresDir = "postgres"
