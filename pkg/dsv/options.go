// Package dsv provides the option-token parser and dialect resolution.
package dsv

import (
	"errors"

	"github.com/shapestone/shape-dsv/internal/argparse"
)

// Recognized option names.
const (
	OptionDialect          = "dialect"
	OptionDelimiter        = "delimiter"
	OptionQuoteChar        = "quotechar"
	OptionEscapeChar       = "escapechar"
	OptionDoubleQuote      = "doublequote"
	OptionQuoting          = "quoting"
	OptionSkipInitialSpace = "skipinitialspace"
)

// optionTable is the single source of truth for option names and value types.
var optionTable = argparse.Table{
	OptionDialect:          {Kind: argparse.KindEnum, Allowed: Dialects()},
	OptionDelimiter:        {Kind: argparse.KindChar, Escaped: true},
	OptionQuoteChar:        {Kind: argparse.KindChar, Escaped: true},
	OptionEscapeChar:       {Kind: argparse.KindChar, Escaped: true},
	OptionDoubleQuote:      {Kind: argparse.KindBool},
	OptionQuoting:          {Kind: argparse.KindEnum, Allowed: []string{"QUOTE_ALL", "QUOTE_NONE", "QUOTE_MINIMAL", "QUOTE_NONNUMERIC"}},
	OptionSkipInitialSpace: {Kind: argparse.KindBool},
}

// Options holds explicitly supplied dialect options. A nil field was not supplied.
type Options struct {
	Dialect          *string
	Delimiter        *rune
	QuoteChar        *rune
	EscapeChar       *rune
	DoubleQuote      *bool
	Quoting          *Quoting
	SkipInitialSpace *bool
}

// IsZero reports whether no option was supplied.
func (o Options) IsZero() bool {
	return o == Options{}
}

// ParseOptions parses name:value tokens into Options.
// Tokens without a name are returned as positional arguments.
//
// Example:
//
//	rest, opts, err := dsv.ParseOptions([]string{"dialect:csv", `delimiter:\t`})
func ParseOptions(tokens []string) ([]string, Options, error) {
	positional, values, err := argparse.Parse(tokens, optionTable)
	if err != nil {
		var perr *argparse.Error
		if errors.As(err, &perr) {
			return nil, Options{}, &ConfigError{Option: perr.Option, Msg: perr.Reason, Err: err}
		}
		return nil, Options{}, &ConfigError{Err: err}
	}

	var opts Options
	for name, v := range values {
		switch name {
		case OptionDialect:
			opts.Dialect = ptr(v.Text)
		case OptionDelimiter:
			opts.Delimiter = ptr(firstRune(v.Text))
		case OptionQuoteChar:
			opts.QuoteChar = ptr(firstRune(v.Text))
		case OptionEscapeChar:
			opts.EscapeChar = ptr(firstRune(v.Text))
		case OptionDoubleQuote:
			opts.DoubleQuote = ptr(v.Bool)
		case OptionSkipInitialSpace:
			opts.SkipInitialSpace = ptr(v.Bool)
		case OptionQuoting:
			q, err := ParseQuoting(v.Text)
			if err != nil {
				return nil, Options{}, err
			}
			opts.Quoting = &q
		}
	}

	return positional, opts, nil
}

// Resolve builds the dialect for opts.
//
// A named dialect is the base when supplied, fallback otherwise. Each
// explicitly supplied option then overrides the base field by field, and the
// result is validated.
func Resolve(opts Options, fallback Dialect) (Dialect, error) {
	d := fallback
	if opts.Dialect != nil {
		preset, ok := LookupDialect(*opts.Dialect)
		if !ok {
			return Dialect{}, &ConfigError{Option: OptionDialect, Msg: "unknown dialect " + *opts.Dialect}
		}
		d = preset
	}

	if opts.Delimiter != nil {
		d.Delimiter = *opts.Delimiter
	}
	if opts.QuoteChar != nil {
		d.QuoteChar = *opts.QuoteChar
	}
	if opts.EscapeChar != nil {
		d.EscapeChar = *opts.EscapeChar
	}
	if opts.DoubleQuote != nil {
		d.DoubleQuote = *opts.DoubleQuote
	}
	if opts.Quoting != nil {
		d.Quoting = *opts.Quoting
	}
	if opts.SkipInitialSpace != nil {
		d.SkipInitialSpace = *opts.SkipInitialSpace
	}

	if err := d.Validate(); err != nil {
		return Dialect{}, err
	}
	return d, nil
}

// ResolveTokens parses tokens and resolves the dialect in one step.
// Positional tokens are returned unchanged for the caller to reject or use.
func ResolveTokens(tokens []string, fallback Dialect) ([]string, Dialect, error) {
	positional, opts, err := ParseOptions(tokens)
	if err != nil {
		return nil, Dialect{}, err
	}
	d, err := Resolve(opts, fallback)
	if err != nil {
		return nil, Dialect{}, err
	}
	return positional, d, nil
}

func ptr[T any](v T) *T {
	return &v
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
