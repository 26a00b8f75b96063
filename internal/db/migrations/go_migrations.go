// Package migrations contains the dialect-aware Go migrations that create
// and drop the links schema.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up or goose.Reset. Valid values: "sqlite3", "postgres".
func SetDialect(d string) {
	dialect = d
}
