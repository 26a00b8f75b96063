// Package store is the data-access layer for the links catalog. Callers go
// through LinkStoreIface; every failure it returns is a ValidationError, a
// NotFoundError or a StorageError.
package store

import "context"

// LinkStoreIface exposes all link data operations.
// No caller may query the links table directly; all access goes through this interface.
type LinkStoreIface interface {
	Create(ctx context.Context, l NewLink) (int64, error)
	GetByID(ctx context.Context, id int64) (*Link, error)
	GetByURL(ctx context.Context, url string) (*Link, error)
	List(ctx context.Context, opts ListOptions) ([]*Link, error)
	UpdateByID(ctx context.Context, id int64, p Patch) (*Link, error)
	UpdateByURL(ctx context.Context, url string, p Patch) (*Link, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByURL(ctx context.Context, url string) error
	Search(ctx context.Context, query string, lang Language) ([]*Link, error)
}
