// Package argparse splits a flat argument list into positional arguments and
// typed name:value options validated against a static option table.
package argparse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind is the target type of an option value.
type Kind int

const (
	// KindString accepts any value.
	KindString Kind = iota
	// KindChar accepts exactly one character.
	KindChar
	// KindBool accepts t, f, true or false.
	KindBool
	// KindEnum accepts one of Spec.Allowed.
	KindEnum
)

// Spec describes one recognized option.
type Spec struct {
	Kind Kind
	// Allowed lists the accepted names of a KindEnum option.
	Allowed []string
	// Escaped decodes backslash escapes (\t, \x09, \\ ...) in the raw value.
	Escaped bool
}

// Table maps option names to their specs. Names are case-sensitive.
type Table map[string]Spec

// Value is a coerced option value.
type Value struct {
	Kind Kind
	// Text holds the value of string, char and enum options.
	Text string
	// Bool holds the value of bool options.
	Bool bool
}

// Error reports an option that could not be parsed.
type Error struct {
	Option string
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// optionGrammar is the participle grammar for one name:value token.
// Everything after the first ':' is the raw value.
type optionGrammar struct {
	Key   string  `parser:"@Key Sep"`
	Value *string `parser:"@Value?"`
}

var optionLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Key", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Sep", Pattern: `:`, Action: lexer.Push("Raw")},
	},
	"Raw": {
		{Name: "Value", Pattern: `[\s\S]+`},
	},
})

var optionParser = participle.MustBuild[optionGrammar](
	participle.Lexer(optionLexer),
)

// Split parses one token. ok is false when the token is positional.
func Split(token string) (key, value string, ok bool) {
	g, err := optionParser.ParseString("", token)
	if err != nil {
		return "", "", false
	}
	if g.Value != nil {
		value = *g.Value
	}
	return g.Key, value, true
}

// Parse separates positional arguments from options and coerces every
// option value according to table. Unknown and duplicate options fail.
func Parse(args []string, table Table) ([]string, map[string]Value, error) {
	var positional []string
	values := make(map[string]Value)

	for _, arg := range args {
		key, raw, ok := Split(arg)
		if !ok {
			positional = append(positional, arg)
			continue
		}

		spec, known := table[key]
		if !known {
			return nil, nil, &Error{Option: key, Value: raw, Reason: fmt.Sprintf("unknown option %q", key)}
		}
		if _, dup := values[key]; dup {
			return nil, nil, &Error{Option: key, Value: raw, Reason: fmt.Sprintf("duplicate option %q", key)}
		}

		v, err := coerce(key, raw, spec)
		if err != nil {
			return nil, nil, err
		}
		values[key] = v
	}

	return positional, values, nil
}

func coerce(key, raw string, spec Spec) (Value, error) {
	text := raw
	if spec.Escaped {
		text = Unescape(raw)
	}

	switch spec.Kind {
	case KindChar:
		if utf8.RuneCountInString(text) != 1 {
			return Value{}, &Error{Option: key, Value: raw, Reason: fmt.Sprintf("%q must be a 1-character string", key)}
		}
	case KindBool:
		switch strings.ToLower(text) {
		case "t", "true":
			return Value{Kind: KindBool, Bool: true}, nil
		case "f", "false":
			return Value{Kind: KindBool, Bool: false}, nil
		}
		return Value{}, &Error{Option: key, Value: raw, Reason: fmt.Sprintf("%q must be t or f, got %q", key, raw)}
	case KindEnum:
		if !slices.Contains(spec.Allowed, text) {
			return Value{}, &Error{Option: key, Value: raw,
				Reason: fmt.Sprintf("%q must be one of %s, got %q", key, strings.Join(spec.Allowed, ", "), raw)}
		}
	}

	return Value{Kind: spec.Kind, Text: text}, nil
}

// Unescape decodes Go-style backslash escapes. A backslash that does not
// start a valid escape is kept literally, so a lone "\" stays "\".
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for len(s) > 0 {
		r, _, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			b.WriteByte(s[0])
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = tail
	}
	return b.String()
}
