package dsv

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Writer encodes records under a dialect.
type Writer struct {
	dst     *bufio.Writer
	dialect Dialect

	// Terminator is written after every record. Default: "\n"
	Terminator string

	line strings.Builder
}

// NewWriter creates a Writer that writes records to w.
// The dialect is assumed valid; use Resolve or Dialect.Validate first.
func NewWriter(w io.Writer, d Dialect) *Writer {
	return &Writer{
		dst:        bufio.NewWriter(w),
		dialect:    d,
		Terminator: "\n",
	}
}

// Write encodes one record of text fields followed by the terminator.
func (w *Writer) Write(record []string) error {
	values := make([]any, len(record))
	for i, s := range record {
		values[i] = s
	}
	return w.WriteRow(values)
}

// WriteRow encodes one record of values followed by the terminator.
// See EncodeRecord for the accepted value types.
func (w *Writer) WriteRow(values []any) error {
	w.line.Reset()
	if err := appendRecord(&w.line, values, w.dialect); err != nil {
		return err
	}
	w.line.WriteString(w.Terminator)
	_, err := w.dst.WriteString(w.line.String())
	return err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.dst.Flush()
}

// EncodeRecord encodes values as one line with no terminator.
//
// Values may be strings, []byte, integers, floats, bools, fmt.Stringer or
// nil (an empty field). Integers, floats and bools are numeric for
// QuoteNonNumeric.
//
// Example:
//
//	line, _ := dsv.EncodeRecord([]any{"a,b", 2}, dsv.CSV())
//	// line: "a,b",2
func EncodeRecord(values []any, d Dialect) (string, error) {
	var b strings.Builder
	if err := appendRecord(&b, values, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

func appendRecord(b *strings.Builder, values []any, d Dialect) error {
	if len(values) == 1 {
		if text, _ := fieldText(values[0]); text == "" {
			// A lone empty field would be indistinguishable from no record.
			if d.Quoting == QuoteNone {
				return &EncodeError{Field: 0, Err: ErrEmptyFieldNeedsQuote}
			}
			b.WriteRune(d.QuoteChar)
			b.WriteRune(d.QuoteChar)
			return nil
		}
	}

	for i, v := range values {
		if i > 0 {
			b.WriteRune(d.Delimiter)
		}
		text, numeric := fieldText(v)
		if err := appendField(b, text, numeric, d); err != nil {
			return &EncodeError{Field: i, Err: err}
		}
	}
	return nil
}

// appendField writes one field, quoting and escaping it per the dialect.
func appendField(b *strings.Builder, field string, numeric bool, d Dialect) error {
	var quoted bool
	switch d.Quoting {
	case QuoteAll:
		quoted = true
	case QuoteNonNumeric:
		quoted = !numeric
	}

	var body strings.Builder
	body.Grow(len(field))
	for _, c := range field {
		if isSpecial(c, d) {
			wantEscape := false
			if d.Quoting == QuoteNone {
				wantEscape = true
			} else {
				switch {
				case c == d.QuoteChar && d.DoubleQuote:
					body.WriteRune(c)
				case c == d.QuoteChar || c == d.EscapeChar:
					wantEscape = true
				}
				if !wantEscape {
					quoted = true
				}
			}
			if wantEscape {
				if d.EscapeChar == 0 {
					return ErrNeedEscape
				}
				body.WriteRune(d.EscapeChar)
			}
		}
		body.WriteRune(c)
	}

	if quoted {
		b.WriteRune(d.QuoteChar)
	}
	b.WriteString(body.String())
	if quoted {
		b.WriteRune(d.QuoteChar)
	}
	return nil
}

func isSpecial(c rune, d Dialect) bool {
	switch {
	case c == d.Delimiter, c == d.QuoteChar, c == '\n', c == '\r':
		return true
	case d.EscapeChar != 0 && c == d.EscapeChar:
		return true
	}
	return false
}

// fieldText converts a value to its field text and reports whether it is numeric.
func fieldText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, false
	case []byte:
		return string(x), false
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return FormatFloat(float64(x)), true
	case float64:
		return FormatFloat(x), true
	case bool:
		if x {
			return "True", true
		}
		return "False", true
	case fmt.Stringer:
		return x.String(), false
	default:
		return fmt.Sprintf("%v", v), false
	}
}

// FormatFloat formats f in shortest form, keeping a ".0" suffix on integral
// values so they still read as reals: 100 → "100.0", 2.5 → "2.5".
// Magnitudes from 1e16 and below 1e-4 use exponent notation.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
