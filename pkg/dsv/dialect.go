package dsv

import (
	"fmt"
	"sort"
)

// Quoting controls when the writer quotes fields and how the reader treats quote characters.
type Quoting int

const (
	// QuoteMinimal quotes only fields containing the delimiter, the quote character or a line break.
	QuoteMinimal Quoting = iota
	// QuoteAll quotes every field.
	QuoteAll
	// QuoteNonNumeric quotes every non-numeric field. The reader requires
	// unquoted fields to be numbers.
	QuoteNonNumeric
	// QuoteNone never quotes. Special characters are escaped with the escape
	// character; the reader rejects unescaped quote characters.
	QuoteNone
)

var quotingNames = map[Quoting]string{
	QuoteMinimal:    "QUOTE_MINIMAL",
	QuoteAll:        "QUOTE_ALL",
	QuoteNonNumeric: "QUOTE_NONNUMERIC",
	QuoteNone:       "QUOTE_NONE",
}

// String returns the option name of the policy, e.g. "QUOTE_ALL".
func (q Quoting) String() string {
	if name, ok := quotingNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quoting(%d)", int(q))
}

// ParseQuoting returns the policy with the given option name.
func ParseQuoting(name string) (Quoting, error) {
	for q, n := range quotingNames {
		if n == name {
			return q, nil
		}
	}
	return 0, &ConfigError{Option: OptionQuoting, Msg: fmt.Sprintf("unknown quoting policy %q", name)}
}

// Dialect describes one delimited-text format.
//
// A zero EscapeChar disables escaping. Dialects are plain values: resolve
// one per call and pass it by value.
type Dialect struct {
	Delimiter        rune
	QuoteChar        rune
	EscapeChar       rune
	DoubleQuote      bool
	Quoting          Quoting
	SkipInitialSpace bool
}

// DefaultDialect returns the system defaults: comma delimiter, double quote
// character, no escape character, doubled quotes and minimal quoting.
func DefaultDialect() Dialect {
	return Dialect{
		Delimiter:   ',',
		QuoteChar:   '"',
		DoubleQuote: true,
		Quoting:     QuoteMinimal,
	}
}

// CSV returns the comma-separated preset.
func CSV() Dialect {
	return DefaultDialect()
}

// TSV returns the tab-separated preset.
func TSV() Dialect {
	d := DefaultDialect()
	d.Delimiter = '\t'
	return d
}

var presets = map[string]func() Dialect{
	"csv": CSV,
	"tsv": TSV,
}

// LookupDialect returns the preset registered under name.
func LookupDialect(name string) (Dialect, bool) {
	fn, ok := presets[name]
	if !ok {
		return Dialect{}, false
	}
	return fn(), true
}

// Dialects returns the sorted names of the presets.
func Dialects() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the character invariants of the dialect.
func (d Dialect) Validate() error {
	switch {
	case d.Delimiter == 0:
		return &ConfigError{Option: OptionDelimiter, Msg: `"delimiter" must be a 1-character string`}
	case d.Delimiter == '\r' || d.Delimiter == '\n':
		return &ConfigError{Option: OptionDelimiter, Msg: `"delimiter" must not be a line break`}
	case d.QuoteChar == 0:
		return &ConfigError{Option: OptionQuoteChar, Msg: `"quotechar" must be a 1-character string`}
	case d.QuoteChar == d.Delimiter:
		return &ConfigError{Option: OptionQuoteChar, Msg: `"quotechar" must differ from "delimiter"`}
	case d.QuoteChar == '\r' || d.QuoteChar == '\n':
		return &ConfigError{Option: OptionQuoteChar, Msg: `"quotechar" must not be a line break`}
	}
	if d.EscapeChar != 0 {
		switch d.EscapeChar {
		case d.Delimiter:
			return &ConfigError{Option: OptionEscapeChar, Msg: `"escapechar" must differ from "delimiter"`}
		case d.QuoteChar:
			return &ConfigError{Option: OptionEscapeChar, Msg: `"escapechar" must differ from "quotechar"`}
		case '\r', '\n':
			return &ConfigError{Option: OptionEscapeChar, Msg: `"escapechar" must not be a line break`}
		}
	}
	if _, ok := quotingNames[d.Quoting]; !ok {
		return &ConfigError{Option: OptionQuoting, Msg: fmt.Sprintf("invalid quoting policy %d", int(d.Quoting))}
	}
	return nil
}
