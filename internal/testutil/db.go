package testutil

import (
	"os"
	"testing"

	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/joestump/linkcat/internal/db"
	"github.com/joestump/linkcat/internal/metrics"
)

// PostgresDSNEnv names the variable that enables tests against PostgreSQL.
const PostgresDSNEnv = "LINKCAT_TEST_POSTGRES_DSN"

// NewTestDB opens a private in-memory SQLite database with the schema applied.
// The schema is torn down and the pool closed when the test ends.
func NewTestDB(t *testing.T) *db.Driver {
	t.Helper()

	// A shared-cache file URI keeps every pooled connection on the same
	// in-memory database; the uuid keeps tests and subtests apart.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	return open(t, db.Options{Driver: "sqlite3", DSN: dsn, MaxOpenConns: 1})
}

// NewPostgresDB connects to the database named by LINKCAT_TEST_POSTGRES_DSN,
// skipping the test when it is unset. The schema is dropped again on cleanup.
func NewPostgresDB(t *testing.T) *db.Driver {
	t.Helper()

	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", PostgresDSNEnv)
	}
	return open(t, db.Options{Driver: "postgres", DSN: dsn})
}

func open(t *testing.T, opts db.Options) *db.Driver {
	t.Helper()

	d, err := db.New(opts)
	if err != nil {
		t.Fatalf("open %s: %v", opts.Driver, err)
	}
	// Start from an empty schema in case a previous run left one behind.
	if err := db.Reset(d); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := db.Migrate(d); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Reset(d); err != nil {
			t.Errorf("reset schema: %v", err)
		}
		_ = d.Close()
	})
	return d
}

// RoundTrips returns how many statements the storage driver has sent so far.
// Take the difference across a call to count its round trips.
func RoundTrips() float64 {
	var total float64
	for _, kind := range []string{metrics.KindSelect, metrics.KindExec} {
		for _, outcome := range []string{metrics.OutcomeOK, metrics.OutcomeError} {
			total += promtest.ToFloat64(metrics.StatementsTotal.WithLabelValues(kind, outcome))
		}
	}
	return total
}
