// Package migrations embeds the schema of every supported sink.
package migrations

import "embed"

// SQLite holds the migrations of the SQLite sink.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// ClickHouse holds the migrations of the ClickHouse sink.
//
//go:embed clickhouse/*.sql
var ClickHouse embed.FS
