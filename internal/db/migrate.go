package db

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/joestump/linkcat/internal/db/migrations"
)

//go:embed migrations
var Migrations embed.FS

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration from the embedded schema source.
// It must not run concurrently with link traffic.
func Migrate(d *Driver) error {
	return withGoose(d, func() error {
		if err := goose.Up(d.db.DB, "."); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		return nil
	})
}

// Reset rolls back every applied migration, dropping the links schema.
// It exists for test and bootstrap teardown; nothing on the request path calls it.
func Reset(d *Driver) error {
	return withGoose(d, func() error {
		// Creates the version table on a database that was never migrated.
		if _, err := goose.GetDBVersion(d.db.DB); err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		if err := goose.Reset(d.db.DB, "."); err != nil {
			return fmt.Errorf("reset migrations: %w", err)
		}
		return nil
	})
}

// Version reports the most recently applied migration.
func Version(d *Driver) (int64, error) {
	var v int64
	err := withGoose(d, func() error {
		var err error
		v, err = goose.GetDBVersion(d.db.DB)
		return err
	})
	return v, err
}

func withGoose(d *Driver, fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	name := d.dialect.gooseDialect()
	if err := goose.SetDialect(name); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	migrations.SetDialect(name)

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{d.log})

	return fn()
}

// gooseLogger routes goose progress output through the driver's logger.
type gooseLogger struct {
	log logrus.FieldLogger
}

func (l gooseLogger) Printf(format string, v ...any) { l.log.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...any) { l.log.Fatalf(format, v...) }
