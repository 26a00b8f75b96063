package store

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every error returned by LinkStore matches exactly
// one of them.
var (
	// ErrValidation is matched by caller mistakes caught before any statement runs.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is matched when a read or update by key touches no row.
	ErrNotFound = errors.New("not found")

	// ErrStorage is matched by any failure reported by the database engine.
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports a bad argument. It never carries a driver message.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string        { return e.Msg }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError names the key type and value that matched nothing.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string        { return e.Msg }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError carries the engine's failure text unchanged.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string        { return e.Err.Error() }
func (e *StorageError) Unwrap() error        { return e.Err }
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func validationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

func storageError(err error) error {
	return &StorageError{Err: err}
}
