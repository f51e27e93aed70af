//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package sqlitefn

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/shapestone/shape-dsv/pkg/textfn"
)

const (
	driverName = "sqlite3_textfn"
	driverType = "cgo"
)

func register(r *textfn.Registry) error {
	scalars := r.Scalars()
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for _, fn := range scalars {
				impl := func(args ...any) (any, error) {
					return call(fn, args)
				}
				if err := conn.RegisterFunc(fn.Name(), impl, true); err != nil {
					return fmt.Errorf("sqlitefn: register %s: %w", fn.Name(), err)
				}
			}
			return nil
		},
	})
	return nil
}
