package db

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"reflect"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/joestump/linkcat/internal/metrics"
)

const slowThreshold = 200 * time.Millisecond

// DriverError is returned for every failure reported by the engine. Its
// message is the engine's own text; the driver does not classify it.
type DriverError struct {
	Err error
}

func (e *DriverError) Error() string { return e.Err.Error() }
func (e *DriverError) Unwrap() error { return e.Err }

// Driver executes parameterized statements against a pooled connection. It is
// the only shared mutable resource in the process and is safe for concurrent use.
type Driver struct {
	db      *sqlx.DB
	dialect Dialect
	timeout time.Duration
	log     logrus.FieldLogger
}

// Wrap builds a Driver around an already open pool.
func Wrap(conn *sqlx.DB, dialect Dialect, timeout time.Duration, log logrus.FieldLogger) *Driver {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Driver{
		db:      conn,
		dialect: dialect,
		timeout: timeout,
		log:     log.WithField("component", "db"),
	}
}

// Dialect reports the SQL flavour of the underlying engine.
func (d *Driver) Dialect() Dialect { return d.dialect }

// DB exposes the pool for schema lifecycle operations.
func (d *Driver) DB() *sqlx.DB { return d.db }

// Close releases every pooled connection.
func (d *Driver) Close() error { return d.db.Close() }

// Select runs query and scans all returned rows into dest, which must be a
// pointer to a slice. The row count is len(*dest).
func (d *Driver) Select(ctx context.Context, dest any, query string, args ...any) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	query = d.db.Rebind(query)
	start := time.Now()
	err := d.db.SelectContext(ctx, dest, query, args...)
	rows := int64(-1)
	if v := reflect.ValueOf(dest); err == nil && v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Slice {
		rows = int64(v.Elem().Len())
	}
	d.trace(metrics.KindSelect, query, start, rows, err)
	if err != nil {
		return &DriverError{Err: err}
	}
	return nil
}

// Exec runs query and returns the number of rows it affected.
func (d *Driver) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	query = d.db.Rebind(query)
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	var n int64
	if err == nil {
		n, err = res.RowsAffected()
	}
	d.trace(metrics.KindExec, query, start, n, err)
	if err != nil {
		return 0, &DriverError{Err: err}
	}
	return n, nil
}

func (d *Driver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.timeout)
}

// trace records one round trip. rows is -1 when the count is not known here.
func (d *Driver) trace(kind, query string, start time.Time, rows int64, err error) {
	elapsed := time.Since(start)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.StatementsTotal.WithLabelValues(kind, outcome).Inc()
	metrics.StatementDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

	log := d.log.WithFields(logrus.Fields{
		"sql":        query,
		"elapsed_ms": float64(elapsed.Microseconds()) / 1000.0,
	})
	if rows >= 0 {
		log = log.WithField("rows", rows)
	}

	switch {
	case err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, sql.ErrNoRows):
		log.WithError(err).Error("statement failed")
	case elapsed > slowThreshold:
		log.WithField("threshold_ms", slowThreshold.Milliseconds()).Warn("slow statement")
	default:
		log.Debug("statement")
	}
}
