package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Language is the code of a supported link language.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// Link is a catalog record. ImageLink, Description and UpdatedOn are nil when
// absent; they are never defaulted to zero values.
type Link struct {
	ID          int64      `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Language    Language   `json:"language"`
	ImageLink   *string    `json:"imageLink"`
	Description *string    `json:"description"`
	CreatedOn   time.Time  `json:"createdOn"`
	UpdatedOn   *time.Time `json:"updatedOn"`
}

// NewLink holds the caller-supplied fields of a link to be created. ID and
// CreatedOn are assigned by the database.
type NewLink struct {
	URL         string
	Title       string
	Language    Language
	ImageLink   *string
	Description *string
}

var linkColumnNames = []string{
	"id", "url", "title", "language", "image_link", "description", "created_on", "updated_on",
}

// linkColumns returns the select list for a links row, qualified with alias
// when one is given.
func linkColumns(alias string) string {
	if alias == "" {
		return strings.Join(linkColumnNames, ", ")
	}
	cols := make([]string, len(linkColumnNames))
	for i, c := range linkColumnNames {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// linkRow is a links row as the engine returns it.
type linkRow struct {
	ID          int64          `db:"id"`
	URL         string         `db:"url"`
	Title       string         `db:"title"`
	Language    string         `db:"language"`
	ImageLink   sql.NullString `db:"image_link"`
	Description sql.NullString `db:"description"`
	CreatedOn   timestamp      `db:"created_on"`
	UpdatedOn   timestamp      `db:"updated_on"`
}

func (r linkRow) toLink() *Link {
	l := &Link{
		ID:          r.ID,
		URL:         r.URL,
		Title:       r.Title,
		Language:    Language(r.Language),
		ImageLink:   nullableString(r.ImageLink),
		Description: nullableString(r.Description),
		CreatedOn:   r.CreatedOn.Time,
	}
	if r.UpdatedOn.Valid {
		t := r.UpdatedOn.Time
		l.UpdatedOn = &t
	}
	return l
}

func toLinks(rows []linkRow) []*Link {
	links := make([]*Link, 0, len(rows))
	for _, r := range rows {
		links = append(links, r.toLink())
	}
	return links
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// timestamp scans a nullable timestamp whether the driver hands back a
// time.Time (PostgreSQL) or the text SQLite stores.
type timestamp struct {
	Time  time.Time
	Valid bool
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = timestamp{}
		return nil
	case time.Time:
		*t = timestamp{Time: v.UTC(), Valid: true}
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			*t = timestamp{Time: v.UTC(), Valid: true}
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
