package sqlitefn_test

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/shapestone/shape-dsv/pkg/sqlitefn"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitefn.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestScalarFunctions(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"strjoin defaults", "select strjoin('a', 'b')", "a,b"},
		{"strjoin numbers", "select strjoin('First', 'Second', 'Third', 100)", "First,Second,Third,100"},
		{"strjoin options", "select strjoin('a', 1, 2.5, 'params', 'quoting:QUOTE_NONNUMERIC')", `"a",1,2.5`},
		{"strjoin tsv", "select strjoin('a', 'b', 'params', 'dialect:tsv')", "a\tb"},
		{"dateformat defaults", "select dateformat('28-01-09')", "2009-01-28"},
		{"dateformat patterns", "select dateformat('2009/01/28', '%Y/%m/%d', '%d.%m.%Y')", "28.01.2009"},
		{"upper case name", "select STRJOIN('x', 'y')", "x,y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if err := db.QueryRow(tt.query).Scan(&got); err != nil {
				t.Fatalf("QueryRow(%q) error = %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScalarFunctions_Null(t *testing.T) {
	db := openTestDB(t)

	for _, query := range []string{
		"select dateformat('32-01-09')",
		"select dateformat(NULL)",
		"select strjoin('a', NULL, 'b')",
	} {
		var got sql.NullString
		if err := db.QueryRow(query).Scan(&got); err != nil {
			t.Fatalf("QueryRow(%q) error = %v", query, err)
		}
		if got.Valid {
			t.Errorf("%s = %q, want NULL", query, got.String)
		}
	}
}

func TestScalarFunctions_Errors(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		query string
		want  string
	}{
		{"select strjoin('x', 'params', 'quotechar:-p')", "quotechar"},
		{"select strjoin('x', 'params', 'bogus')", "unknown argument"},
		{"select dateformat()", "no input"},
		{"select dateformat('28-01-09', '%d-%m-%y %Q')", "dateformat"},
	}

	for _, tt := range tests {
		var got sql.NullString
		err := db.QueryRow(tt.query).Scan(&got)
		if err == nil {
			t.Errorf("%s: expected error", tt.query)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %v, want it to mention %q", tt.query, err, tt.want)
		}
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	if err := sqlitefn.Register(); err != nil {
		t.Fatal(err)
	}
	if err := sqlitefn.Register(); err != nil {
		t.Fatal(err)
	}
	if sqlitefn.DriverName() == "" || sqlitefn.DriverType() == "" {
		t.Error("driver name and type should be set")
	}
}
