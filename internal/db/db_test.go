package db_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/joestump/linkcat/internal/db"
	"github.com/joestump/linkcat/internal/testutil"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := db.New(db.Options{Driver: "mysql", DSN: "x"})
	if err == nil || !strings.Contains(err.Error(), "unsupported DB driver") {
		t.Errorf("New(mysql) = %v, want unsupported driver error", err)
	}
}

func TestDriver_Dialect(t *testing.T) {
	d := testutil.NewTestDB(t)
	if d.Dialect() != db.SQLite {
		t.Errorf("Dialect = %q, want %q", d.Dialect(), db.SQLite)
	}
}

func TestDriver_SelectAndExec(t *testing.T) {
	d := testutil.NewTestDB(t)
	ctx := context.Background()

	var ids []int64
	err := d.Select(ctx, &ids, `INSERT INTO links (url, title, language) VALUES (?, ?, ?), (?, ?, ?) RETURNING id`,
		"https://a.example", "A", "en", "https://b.example", "B", "fr")
	if err != nil {
		t.Fatalf("Select(insert): %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("returned %d ids, want 2", len(ids))
	}

	n, err := d.Exec(ctx, `UPDATE links SET title = ? WHERE language = ?`, "Z", "en")
	if err != nil {
		t.Fatalf("Exec(update): %v", err)
	}
	if n != 1 {
		t.Errorf("rows affected = %d, want 1", n)
	}

	n, err = d.Exec(ctx, `DELETE FROM links WHERE id = ?`, 999)
	if err != nil || n != 0 {
		t.Errorf("Exec(delete missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestDriver_ErrorsCarryEngineText(t *testing.T) {
	d := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := d.Exec(ctx, `INSERT INTO nowhere (x) VALUES (?)`, 1)
	var de *db.DriverError
	if !errors.As(err, &de) {
		t.Fatalf("Exec = %v, want *db.DriverError", err)
	}
	if de.Error() != errors.Unwrap(de).Error() {
		t.Errorf("message %q differs from engine text %q", de.Error(), errors.Unwrap(de).Error())
	}
	if !strings.Contains(de.Error(), "nowhere") {
		t.Errorf("message = %q, want engine text naming the table", de.Error())
	}

	var rows []int64
	if err := d.Select(ctx, &rows, `SELEC 1`); !errors.As(err, &de) {
		t.Errorf("Select(syntax error) = %v, want *db.DriverError", err)
	}
}

func TestDriver_StatementTimeout(t *testing.T) {
	base := testutil.NewTestDB(t)
	d := db.Wrap(base.DB(), base.Dialect(), time.Nanosecond, nil)

	var rows []int64
	err := d.Select(context.Background(), &rows, `SELECT id FROM links`)
	var de *db.DriverError
	if !errors.As(err, &de) {
		t.Fatalf("Select = %v, want *db.DriverError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Select = %v, want context.DeadlineExceeded", err)
	}

	if _, err := d.Exec(context.Background(), `DELETE FROM links`); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Exec = %v, want context.DeadlineExceeded", err)
	}

	// Without a timeout the same pool still serves statements.
	if err := base.Select(context.Background(), &rows, `SELECT id FROM links`); err != nil {
		t.Errorf("Select on untimed driver: %v", err)
	}
}

func TestDriver_CountsRoundTrips(t *testing.T) {
	d := testutil.NewTestDB(t)
	ctx := context.Background()

	before := testutil.RoundTrips()
	var rows []int64
	_ = d.Select(ctx, &rows, `SELECT id FROM links`)
	_, _ = d.Exec(ctx, `DELETE FROM links`)
	_, _ = d.Exec(ctx, `NOT SQL`)
	if n := testutil.RoundTrips() - before; n != 3 {
		t.Errorf("round trips = %v, want 3", n)
	}
}

func TestMigrateAndReset(t *testing.T) {
	d := testutil.NewTestDB(t)
	ctx := context.Background()

	v, err := db.Version(d)
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v != 2 {
		t.Errorf("version = %d, want 2", v)
	}

	// Migrate is idempotent.
	if err := db.Migrate(d); err != nil {
		t.Fatalf("Migrate again: %v", err)
	}

	if err := db.Reset(d); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	var rows []int64
	if err := d.Select(ctx, &rows, `SELECT id FROM links`); err == nil {
		t.Error("links table still exists after Reset")
	}

	if err := db.Migrate(d); err != nil {
		t.Fatalf("Migrate after Reset: %v", err)
	}
	if err := d.Select(ctx, &rows, `SELECT rowid FROM links_search_en`); err != nil {
		t.Errorf("search table missing after re-migrate: %v", err)
	}
}
