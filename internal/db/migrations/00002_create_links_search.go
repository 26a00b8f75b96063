package migrations

// Full-text search is engine specific:
//   - PostgreSQL keeps a generated tsvector column whose text-search config
//     (english/french) follows the row's language, backed by a GIN index.
//   - SQLite keeps one FTS5 table per language, kept in step with links by
//     triggers. English uses the porter stemmer; French rows are stemmed by the
//     stem_fr SQL function before they reach the index.

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLinksSearch, downCreateLinksSearch)
}

func upCreateLinksSearch(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range linksSearchUpStmts() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downCreateLinksSearch(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range linksSearchDownStmts() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func linksSearchUpStmts() []string {
	switch dialect {
	case "postgres":
		return []string{
			`ALTER TABLE links ADD COLUMN IF NOT EXISTS search tsvector GENERATED ALWAYS AS (
    to_tsvector(
        CASE language WHEN 'fr' THEN 'french'::regconfig ELSE 'english'::regconfig END,
        title || ' ' || coalesce(description, '')
    )
) STORED`,
			`CREATE INDEX IF NOT EXISTS links_search_idx ON links USING GIN (search)`,
		}
	default: // sqlite3
		return []string{
			`CREATE VIRTUAL TABLE IF NOT EXISTS links_search_en USING fts5(
    title, description, tokenize = 'porter unicode61 remove_diacritics 2'
)`,
			`CREATE VIRTUAL TABLE IF NOT EXISTS links_search_fr USING fts5(
    title, description, tokenize = 'unicode61 remove_diacritics 2'
)`,

			// Backfill rows written before this migration.
			`INSERT INTO links_search_en (rowid, title, description)
SELECT id, title, coalesce(description, '') FROM links WHERE language = 'en'`,
			`INSERT INTO links_search_fr (rowid, title, description)
SELECT id, stem_fr(title), stem_fr(coalesce(description, '')) FROM links WHERE language = 'fr'`,

			`CREATE TRIGGER IF NOT EXISTS links_search_ai AFTER INSERT ON links BEGIN
    INSERT INTO links_search_en (rowid, title, description)
        SELECT new.id, new.title, coalesce(new.description, '') WHERE new.language = 'en';
    INSERT INTO links_search_fr (rowid, title, description)
        SELECT new.id, stem_fr(new.title), stem_fr(coalesce(new.description, '')) WHERE new.language = 'fr';
END`,
			`CREATE TRIGGER IF NOT EXISTS links_search_ad AFTER DELETE ON links BEGIN
    DELETE FROM links_search_en WHERE rowid = old.id;
    DELETE FROM links_search_fr WHERE rowid = old.id;
END`,
			`CREATE TRIGGER IF NOT EXISTS links_search_au AFTER UPDATE ON links BEGIN
    DELETE FROM links_search_en WHERE rowid = old.id;
    DELETE FROM links_search_fr WHERE rowid = old.id;
    INSERT INTO links_search_en (rowid, title, description)
        SELECT new.id, new.title, coalesce(new.description, '') WHERE new.language = 'en';
    INSERT INTO links_search_fr (rowid, title, description)
        SELECT new.id, stem_fr(new.title), stem_fr(coalesce(new.description, '')) WHERE new.language = 'fr';
END`,
		}
	}
}

func linksSearchDownStmts() []string {
	switch dialect {
	case "postgres":
		return []string{
			`DROP INDEX IF EXISTS links_search_idx`,
			`ALTER TABLE links DROP COLUMN IF EXISTS search`,
		}
	default: // sqlite3
		return []string{
			`DROP TRIGGER IF EXISTS links_search_au`,
			`DROP TRIGGER IF EXISTS links_search_ad`,
			`DROP TRIGGER IF EXISTS links_search_ai`,
			`DROP TABLE IF EXISTS links_search_fr`,
			`DROP TABLE IF EXISTS links_search_en`,
		}
	}
}
