package db

import "fmt"

// Dialect identifies the SQL flavour spoken by the engine behind a Driver.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// dialectFor maps a configured driver name to its dialect.
func dialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite3":
		return SQLite, nil
	case "postgres", "pgx":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported DB driver %q: must be sqlite3, postgres, or pgx", driver)
	}
}

// Now returns the SQL expression the engine evaluates to the current timestamp.
// SQLite stores it as UTC text with millisecond precision so that lexical
// order matches chronological order.
func (d Dialect) Now() string {
	if d == Postgres {
		return "now()"
	}
	return "strftime('%Y-%m-%d %H:%M:%f', 'now')"
}

// NoLimit is the LIMIT operand meaning "all rows"; SQLite only accepts OFFSET
// after a LIMIT clause.
func (d Dialect) NoLimit() string {
	if d == Postgres {
		return "ALL"
	}
	return "-1"
}

func (d Dialect) gooseDialect() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite3"
}
