package store

import (
	"context"
	"errors"
	"strings"

	"github.com/joestump/linkcat/internal/db"
)

// LinkStore is the LinkStoreIface implementation over a db.Driver. Each
// method sends exactly one statement; none retries.
type LinkStore struct {
	db *db.Driver
}

func NewLinkStore(d *db.Driver) *LinkStore {
	return &LinkStore{db: d}
}

var _ LinkStoreIface = (*LinkStore)(nil)

// Create inserts l and returns the id assigned by the database. Absent
// optional fields are stored as NULL.
func (s *LinkStore) Create(ctx context.Context, l NewLink) (int64, error) {
	var ids []int64
	err := s.db.Select(ctx, &ids, `
		INSERT INTO links (url, title, language, image_link, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, l.URL, l.Title, string(l.Language), l.ImageLink, l.Description)
	if err != nil {
		return 0, storageError(err)
	}
	if len(ids) == 0 {
		return 0, storageError(errors.New("insert into links returned no id"))
	}
	return ids[0], nil
}

// GetByID returns the link with id, or a NotFoundError.
func (s *LinkStore) GetByID(ctx context.Context, id int64) (*Link, error) {
	var rows []linkRow
	err := s.db.Select(ctx, &rows, `SELECT `+linkColumns("")+` FROM links WHERE id = ?`, id)
	if err != nil {
		return nil, storageError(err)
	}
	if len(rows) == 0 {
		return nil, notFound("No links found for id %d", id)
	}
	return rows[0].toLink(), nil
}

// GetByURL returns the link stored for url, or a NotFoundError. If several
// rows share the url the earliest inserted wins.
func (s *LinkStore) GetByURL(ctx context.Context, url string) (*Link, error) {
	var rows []linkRow
	err := s.db.Select(ctx, &rows, `
		SELECT `+linkColumns("")+` FROM links WHERE url = ? ORDER BY id ASC LIMIT 1
	`, url)
	if err != nil {
		return nil, storageError(err)
	}
	if len(rows) == 0 {
		return nil, notFound("No links found for url %s", url)
	}
	return rows[0].toLink(), nil
}

// ListOptions controls List. The zero value lists every link oldest first.
type ListOptions struct {
	Order  string // "asc" (default) or "desc"
	Limit  Opt[int]
	Offset Opt[int]
}

// List returns links ordered by creation time. Limit and Offset are applied
// only when present. No match yields an empty slice.
func (s *LinkStore) List(ctx context.Context, opts ListOptions) ([]*Link, error) {
	dir, err := orderDirection(opts.Order)
	if err != nil {
		return nil, err
	}

	var q strings.Builder
	var args []any
	q.WriteString(`SELECT ` + linkColumns("") + ` FROM links ORDER BY created_on ` + dir + `, id ` + dir)

	limit, hasLimit := opts.Limit.Get()
	offset, hasOffset := opts.Offset.Get()
	switch {
	case hasLimit:
		q.WriteString(` LIMIT ?`)
		args = append(args, limit)
	case hasOffset:
		q.WriteString(` LIMIT ` + s.db.Dialect().NoLimit())
	}
	if hasOffset {
		q.WriteString(` OFFSET ?`)
		args = append(args, offset)
	}

	var rows []linkRow
	if err := s.db.Select(ctx, &rows, q.String(), args...); err != nil {
		return nil, storageError(err)
	}
	return toLinks(rows), nil
}

// UpdateByID applies p to the link with id and returns the updated link.
func (s *LinkStore) UpdateByID(ctx context.Context, id int64, p Patch) (*Link, error) {
	l, err := s.update(ctx, "id", id, p)
	if errors.Is(err, errNoRows) {
		return nil, notFound("link cannot be found for id %d", id)
	}
	return l, err
}

// UpdateByURL applies p to the link stored for url and returns the updated link.
func (s *LinkStore) UpdateByURL(ctx context.Context, url string, p Patch) (*Link, error) {
	l, err := s.update(ctx, "url", url, p)
	if errors.Is(err, errNoRows) {
		return nil, notFound("link cannot be found for url %s", url)
	}
	return l, err
}

var errNoRows = errors.New("no rows updated")

// update sets the present fields of p and refreshes updated_on in a single
// statement, echoing the row back. column is always a literal from this file.
func (s *LinkStore) update(ctx context.Context, column string, key any, p Patch) (*Link, error) {
	sets, args := p.assignments()
	sets = append(sets, "updated_on = "+s.db.Dialect().Now())
	args = append(args, key)

	var rows []linkRow
	err := s.db.Select(ctx, &rows, `
		UPDATE links SET `+strings.Join(sets, ", ")+`
		WHERE `+column+` = ?
		RETURNING `+linkColumns(""), args...)
	if err != nil {
		return nil, storageError(err)
	}
	if len(rows) == 0 {
		return nil, errNoRows
	}
	return rows[0].toLink(), nil
}

// DeleteByID removes the link with id. Deleting a missing id is not an error.
func (s *LinkStore) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM links WHERE id = ?`, id); err != nil {
		return storageError(err)
	}
	return nil
}

// DeleteByURL removes every link stored for url. A missing url is not an error.
func (s *LinkStore) DeleteByURL(ctx context.Context, url string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM links WHERE url = ?`, url); err != nil {
		return storageError(err)
	}
	return nil
}
