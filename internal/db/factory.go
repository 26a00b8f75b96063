package db

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Options configures the connection pool opened by New.
type Options struct {
	Driver string
	DSN    string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// StatementTimeout bounds every statement run through the Driver. Zero disables it.
	StatementTimeout time.Duration

	Logger logrus.FieldLogger
}

// New opens a connection pool for the configured driver and DSN.
// Supported drivers: sqlite3, postgres (lib/pq), pgx (jackc/pgx stdlib).
func New(opts Options) (*Driver, error) {
	dialect, err := dialectFor(opts.Driver)
	if err != nil {
		return nil, err
	}

	var conn *sqlx.DB
	switch opts.Driver {
	case "sqlite3":
		// modernc/sqlite uses "sqlite" as the driver name (CGO-free)
		conn, err = sqlx.Open("sqlite", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	case "postgres":
		conn, err = sqlx.Open("postgres", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
	case "pgx":
		conn, err = sqlx.Open("pgx", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("open pgx: %w", err)
		}
	}

	if opts.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return Wrap(conn, dialect, opts.StatementTimeout, opts.Logger), nil
}
