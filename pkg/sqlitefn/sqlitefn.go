// Package sqlitefn registers the scalar text operators as SQLite functions.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite, driver "sqlite"
//   - CGO mode (-tags cgo_sqlite): mattn/go-sqlite3, driver "sqlite3_textfn"
//
// Use Open instead of sql.Open so the functions are registered before the
// first connection is made:
//
//	db, err := sqlitefn.Open(":memory:")
//	if err != nil {
//	    return err
//	}
//	var line string
//	err = db.QueryRow("select strjoin('a', 'b', 'params', 'dialect:tsv')").Scan(&line)
//
// SQL NULL maps to the null Value in both directions. Multiset operators
// are not registered: SQLite scalar functions return a single value.
package sqlitefn

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/shapestone/shape-dsv/pkg/textfn"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register makes every scalar operator of the default registry available to
// connections opened afterwards. Only the first call does any work.
func Register() error {
	registerOnce.Do(func() {
		registerErr = register(textfn.DefaultRegistry())
	})
	return registerErr
}

// Open registers the functions and opens a SQLite database.
func Open(dataSourceName string) (*sql.DB, error) {
	if err := Register(); err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sqlitefn: open %s: %w", dataSourceName, err)
	}
	return db, nil
}

// DriverName returns the database/sql driver name used by Open.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3 and "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// call runs fn on SQLite argument values and converts the result back.
func call[T any](fn *textfn.ScalarFunc, args []T) (any, error) {
	values := make([]textfn.Value, len(args))
	for i, a := range args {
		values[i] = textfn.ValueOf(any(a))
	}
	v, err := fn.Call(values)
	if err != nil {
		return nil, err
	}
	return v.Any(), nil
}
