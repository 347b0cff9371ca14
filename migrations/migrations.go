// Package migrations embeds the schema of both record store backends.
package migrations

import "embed"

// Postgres holds the PostgreSQL schema under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the SQLite schema under sqlite/.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
