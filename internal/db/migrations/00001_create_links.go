package migrations

// The links table differs by engine: BIGSERIAL/TIMESTAMPTZ on PostgreSQL,
// INTEGER PRIMARY KEY/text timestamps on SQLite.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLinks, downCreateLinks)
}

func upCreateLinks(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS links (
    id          BIGSERIAL PRIMARY KEY,
    url         TEXT NOT NULL,
    title       TEXT NOT NULL,
    language    TEXT NOT NULL,
    image_link  TEXT,
    description TEXT,
    created_on  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_on  TIMESTAMPTZ,
    CONSTRAINT links_url_check CHECK (url <> ''),
    CONSTRAINT links_title_check CHECK (title <> ''),
    CONSTRAINT links_language_check CHECK (language IN ('en', 'fr'))
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS links (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    url         TEXT NOT NULL,
    title       TEXT NOT NULL,
    language    TEXT NOT NULL,
    image_link  TEXT,
    description TEXT,
    created_on  TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now')),
    updated_on  TIMESTAMP,
    CONSTRAINT links_url_check CHECK (url <> ''),
    CONSTRAINT links_title_check CHECK (title <> ''),
    CONSTRAINT links_language_check CHECK (language IN ('en', 'fr'))
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create links table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS links_url_idx ON links (url)`); err != nil {
		return fmt.Errorf("create links url index: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS links_created_on_idx ON links (created_on, id)`)
	return err
}

func downCreateLinks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS links`)
	return err
}
