package store

import (
	"context"
	"strings"
	"unicode"

	"github.com/joestump/linkcat/internal/db"
	"github.com/joestump/linkcat/internal/textsearch"
)

// textSearchConfig maps a language to its PostgreSQL text-search configuration.
var textSearchConfig = map[Language]string{
	English: "english",
	French:  "french",
}

// Search returns the links in lang whose title or description match query,
// most relevant first. lang is validated before anything is sent to the
// database. A query with no words, or no match, yields an empty slice.
func (s *LinkStore) Search(ctx context.Context, query string, lang Language) ([]*Link, error) {
	if err := ValidateLanguage(lang); err != nil {
		return nil, err
	}
	terms := searchTerms(query)
	if len(terms) == 0 {
		return []*Link{}, nil
	}

	var rows []linkRow
	var err error
	switch s.db.Dialect() {
	case db.Postgres:
		err = s.db.Select(ctx, &rows, `
			SELECT `+linkColumns("l")+`
			FROM links l, plainto_tsquery(?::regconfig, ?) AS q
			WHERE l.language = ? AND l.search @@ q
			ORDER BY ts_rank(l.search, q) DESC, l.id ASC
		`, textSearchConfig[lang], strings.Join(terms, " "), string(lang))
	default:
		// lang was validated above, so the table name is one of a fixed set.
		table := "links_search_" + string(lang)
		if lang == French {
			terms = stemFrench(terms)
		}
		err = s.db.Select(ctx, &rows, `
			SELECT `+linkColumns("l")+`
			FROM `+table+`
			JOIN links l ON l.id = `+table+`.rowid
			WHERE `+table+` MATCH ? AND l.language = ?
			ORDER BY `+table+`.rank, l.id ASC
		`, ftsQuery(terms), string(lang))
	}
	if err != nil {
		return nil, storageError(err)
	}
	return toLinks(rows), nil
}

// ftsQuery quotes every term as an FTS5 string so that user input is never
// parsed as query syntax. Adjacent strings are implicitly ANDed.
func ftsQuery(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " ")
}

// stemFrench stems query terms the same way stem_fr stems indexed French text.
func stemFrench(terms []string) []string {
	stemmed := make([]string, 0, len(terms))
	for _, t := range terms {
		if st := textsearch.French(t); st != "" {
			stemmed = append(stemmed, st)
		}
	}
	return stemmed
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
