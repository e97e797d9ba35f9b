package sqlstore

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// lowerFunc folds case with Unicode rules. SQLite's built-in LOWER only
// handles ASCII.
const lowerFunc = "okr_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(lowerFunc, 1, lowerValue)
}

func lowerValue(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
