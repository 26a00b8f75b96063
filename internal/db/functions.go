package db

import (
	"database/sql/driver"
	"fmt"

	"modernc.org/sqlite"

	"github.com/joestump/linkcat/internal/textsearch"
)

// stem_fr is called by the links_search_fr triggers; it must be registered
// before the first SQLite connection opens.
func init() {
	if err := sqlite.RegisterDeterministicScalarFunction("stem_fr", 1, stemFrench); err != nil {
		panic(fmt.Sprintf("register stem_fr: %v", err))
	}
}

func stemFrench(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return textsearch.French(v), nil
	case []byte:
		return textsearch.French(string(v)), nil
	default:
		return nil, fmt.Errorf("stem_fr: unsupported argument type %T", v)
	}
}
