package dsv_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

type celsius float64

func (c celsius) String() string { return "hot" }

func TestEncodeRecord(t *testing.T) {
	escaped := withDialect(func(d *dsv.Dialect) { d.EscapeChar = '\\' })

	tests := []struct {
		name    string
		values  []any
		dialect dsv.Dialect
		want    string
	}{
		{"plain", []any{"a", "b"}, dsv.CSV(), "a,b"},
		{"delimiter is quoted", []any{"a,b", "c"}, dsv.CSV(), `"a,b",c`},
		{"quote is doubled", []any{`a"b`}, dsv.CSV(), `"a""b"`},
		{"newline is quoted", []any{"x\ny", "z"}, dsv.CSV(), "\"x\ny\",z"},
		{"carriage return is quoted", []any{"x\ry"}, dsv.CSV(), "\"x\ry\""},
		{"single empty field", []any{""}, dsv.CSV(), `""`},
		{"single nil field", []any{nil}, dsv.CSV(), `""`},
		{"two empty fields", []any{"", ""}, dsv.CSV(), ","},
		{"no fields", []any{}, dsv.CSV(), ""},
		{"tsv leaves commas", []any{"a,b", "c d"}, dsv.TSV(), "a,b\tc d"},
		{"tsv quotes tabs", []any{"a\tb"}, dsv.TSV(), "\"a\tb\""},
		{"numbers", []any{1, int64(-2), uint8(3), 2.5, float32(0.5), 100.0}, dsv.CSV(), "1,-2,3,2.5,0.5,100.0"},
		{"bool and stringer", []any{true, false, celsius(40)}, dsv.CSV(), "True,False,hot"},
		{"bytes", []any{[]byte("raw")}, dsv.CSV(), "raw"},
		{
			name:    "quote all",
			values:  []any{"a", 1, ""},
			dialect: withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteAll }),
			want:    `"a","1",""`,
		},
		{
			name:    "quote nonnumeric",
			values:  []any{"a", 1, 2.5, "3"},
			dialect: withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteNonNumeric }),
			want:    `"a",1,2.5,"3"`,
		},
		{
			name:    "quote nonnumeric leaves bools bare",
			values:  []any{true, "t", false},
			dialect: withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteNonNumeric }),
			want:    `True,"t",False`,
		},
		{
			name:    "quote none escapes specials",
			values:  []any{"a,b", `c"d`, "e"},
			dialect: withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteNone; d.EscapeChar = '\\' }),
			want:    `a\,b,c\"d,e`,
		},
		{
			name:    "escape char is escaped",
			values:  []any{`a\b`},
			dialect: escaped,
			want:    `a\\b`,
		},
		{
			name:    "escape without doublequote",
			values:  []any{`a"b`, "c,d"},
			dialect: withDialect(func(d *dsv.Dialect) { d.EscapeChar = '\\'; d.DoubleQuote = false }),
			want:    `a\"b,"c,d"`,
		},
		{
			name:    "custom quote char",
			values:  []any{"a,b", `"`},
			dialect: withDialect(func(d *dsv.Dialect) { d.QuoteChar = '\'' }),
			want:    `'a,b',"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dsv.EncodeRecord(tt.values, tt.dialect)
			if err != nil {
				t.Fatalf("EncodeRecord() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeRecord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		values  []any
		dialect dsv.Dialect
		field   int
		want    error
	}{
		{
			name:    "quote none without escape",
			values:  []any{"ok", "a,b"},
			dialect: withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteNone }),
			field:   1,
			want:    dsv.ErrNeedEscape,
		},
		{
			name:    "no doublequote without escape",
			values:  []any{`a"b`},
			dialect: withDialect(func(d *dsv.Dialect) { d.DoubleQuote = false }),
			field:   0,
			want:    dsv.ErrNeedEscape,
		},
		{
			name:    "single empty field under quote none",
			values:  []any{""},
			dialect: withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteNone; d.EscapeChar = '\\' }),
			field:   0,
			want:    dsv.ErrEmptyFieldNeedsQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dsv.EncodeRecord(tt.values, tt.dialect)
			if !errors.Is(err, tt.want) {
				t.Fatalf("EncodeRecord() error = %v, want %v", err, tt.want)
			}
			var eerr *dsv.EncodeError
			if !errors.As(err, &eerr) {
				t.Fatalf("error type = %T, want *EncodeError", err)
			}
			if eerr.Field != tt.field {
				t.Errorf("Field = %d, want %d", eerr.Field, tt.field)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := dsv.NewWriter(&buf, dsv.CSV())
	w.Terminator = "\r\n"

	if err := w.Write([]string{"name", "note"}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow([]any{"Alice", "says \"hi\""}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "name,note\r\nAlice,\"says \"\"hi\"\"\"\r\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	records := [][]string{
		{"plain", "with,comma", `with"quote`},
		{"multi\nline", "", "tab\there"},
		{`back\slash`, " lead", "trail "},
	}

	dialects := map[string]dsv.Dialect{
		"csv":        dsv.CSV(),
		"tsv":        dsv.TSV(),
		"quote all":  withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteAll }),
		"escape":     withDialect(func(d *dsv.Dialect) { d.EscapeChar = '\\'; d.DoubleQuote = false }),
		"quote none": withDialect(func(d *dsv.Dialect) { d.Quoting = dsv.QuoteNone; d.EscapeChar = '\\' }),
	}

	for name, d := range dialects {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			w := dsv.NewWriter(&buf, d)
			for _, rec := range records {
				if err := w.Write(rec); err != nil {
					t.Fatalf("Write() error = %v", err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatal(err)
			}

			got, err := dsv.Decode(buf.String(), d)
			if err != nil {
				t.Fatalf("Decode() error = %v\ninput: %q", err, buf.String())
			}
			if !reflect.DeepEqual(got, records) {
				t.Errorf("round trip mismatch:\ngot:  %q\nwant: %q", got, records)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "2.5"},
		{100, "100.0"},
		{0, "0.0"},
		{-3, "-3.0"},
		{1e20, "1e+20"},
		{0.00001, "1e-05"},
		{123456789, "123456789.0"},
	}

	for _, tt := range tests {
		if got := dsv.FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
