package dsv_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func TestParseOptions(t *testing.T) {
	rest, opts, err := dsv.ParseOptions([]string{"hello", "dialect:tsv", `delimiter:\t`, "doublequote:f", "world"})
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	if !reflect.DeepEqual(rest, []string{"hello", "world"}) {
		t.Errorf("positional = %q", rest)
	}
	if opts.Dialect == nil || *opts.Dialect != "tsv" {
		t.Errorf("Dialect = %v", opts.Dialect)
	}
	if opts.Delimiter == nil || *opts.Delimiter != '\t' {
		t.Errorf("Delimiter = %v", opts.Delimiter)
	}
	if opts.DoubleQuote == nil || *opts.DoubleQuote {
		t.Errorf("DoubleQuote = %v", opts.DoubleQuote)
	}
	if opts.QuoteChar != nil || opts.Quoting != nil {
		t.Error("unsupplied options should be nil")
	}

	_, empty, err := dsv.ParseOptions(nil)
	if err != nil || !empty.IsZero() {
		t.Errorf("ParseOptions(nil) = %+v, %v", empty, err)
	}
}

func TestResolve(t *testing.T) {
	spaced := dsv.DefaultDialect()
	spaced.Delimiter = ' '

	tests := []struct {
		name     string
		tokens   []string
		fallback dsv.Dialect
		check    func(t *testing.T, d dsv.Dialect)
	}{
		{
			name:     "fallback when no dialect",
			fallback: spaced,
			check: func(t *testing.T, d dsv.Dialect) {
				if d != spaced {
					t.Errorf("got %+v, want %+v", d, spaced)
				}
			},
		},
		{
			name:     "preset replaces fallback",
			tokens:   []string{"dialect:csv"},
			fallback: spaced,
			check: func(t *testing.T, d dsv.Dialect) {
				if d != dsv.CSV() {
					t.Errorf("got %+v, want csv", d)
				}
			},
		},
		{
			name:     "overrides apply on top of preset",
			tokens:   []string{"dialect:tsv", "quoting:QUOTE_ALL", "quotechar:'"},
			fallback: spaced,
			check: func(t *testing.T, d dsv.Dialect) {
				if d.Delimiter != '\t' || d.Quoting != dsv.QuoteAll || d.QuoteChar != '\'' {
					t.Errorf("got %+v", d)
				}
			},
		},
		{
			name:     "space delimiter",
			tokens:   []string{"delimiter: "},
			fallback: dsv.DefaultDialect(),
			check: func(t *testing.T, d dsv.Dialect) {
				if d.Delimiter != ' ' {
					t.Errorf("Delimiter = %q", d.Delimiter)
				}
			},
		},
		{
			name:     "escaped escape char",
			tokens:   []string{`escapechar:\\`, "skipinitialspace:T"},
			fallback: dsv.DefaultDialect(),
			check: func(t *testing.T, d dsv.Dialect) {
				if d.EscapeChar != '\\' || !d.SkipInitialSpace {
					t.Errorf("got %+v", d)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, d, err := dsv.ResolveTokens(tt.tokens, tt.fallback)
			if err != nil {
				t.Fatalf("ResolveTokens() error = %v", err)
			}
			if len(rest) != 0 {
				t.Errorf("positional = %q", rest)
			}
			tt.check(t, d)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		option  string
		message string
	}{
		{"quotechar too long", []string{"quotechar:-p"}, dsv.OptionQuoteChar, `"quotechar" must be a 1-character string`},
		{"empty delimiter", []string{"delimiter:"}, dsv.OptionDelimiter, `"delimiter" must be a 1-character string`},
		{"unknown option", []string{"separator:;"}, "separator", "unknown option"},
		{"duplicate option", []string{"quotechar:'", "quotechar:'"}, dsv.OptionQuoteChar, "duplicate option"},
		{"bad boolean", []string{"doublequote:yes"}, dsv.OptionDoubleQuote, "must be t or f"},
		{"unknown quoting", []string{"quoting:QUOTE_SOME"}, dsv.OptionQuoting, "must be one of"},
		{"unknown dialect", []string{"dialect:excel"}, dsv.OptionDialect, "must be one of"},
		{"quotechar equals delimiter", []string{"quotechar:,"}, dsv.OptionQuoteChar, "must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := dsv.ResolveTokens(tt.tokens, dsv.DefaultDialect())
			var cerr *dsv.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
			if cerr.Option != tt.option {
				t.Errorf("Option = %q, want %q", cerr.Option, tt.option)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.message)
			}
		})
	}
}
