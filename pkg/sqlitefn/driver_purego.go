//go:build !cgo_sqlite

package sqlitefn

import (
	"database/sql/driver"
	"fmt"

	"github.com/shapestone/shape-dsv/pkg/textfn"
	"modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	driverType = "purego"
)

func register(r *textfn.Registry) error {
	for _, fn := range r.Scalars() {
		impl := func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			return call(fn, args)
		}
		if err := sqlite.RegisterDeterministicScalarFunction(fn.Name(), int32(fn.NumArgs()), impl); err != nil {
			return fmt.Errorf("sqlitefn: register %s: %w", fn.Name(), err)
		}
	}
	return nil
}
