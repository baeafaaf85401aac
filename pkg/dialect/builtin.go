package dialect

import "github.com/leapstack-labs/wildlog/pkg/core"

// Postgres is the PostgreSQL dialect.
var Postgres = &Dialect{
	Name:             "postgres",
	Placeholder:      core.PlaceholderDollar,
	SerialPrimaryKey: "BIGSERIAL PRIMARY KEY",
}

// SQLite is the SQLite dialect.
var SQLite = &Dialect{
	Name:             "sqlite",
	Placeholder:      core.PlaceholderQuestion,
	SerialPrimaryKey: "INTEGER PRIMARY KEY AUTOINCREMENT",
}

func init() {
	Register(Postgres)
	Register(SQLite)
}
