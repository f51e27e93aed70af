package textfn

import (
	"errors"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// placeholder replaces, in both pattern and value, literal text that a Go
// time layout cannot carry.
const placeholder = "\x00"

// maxLiteralAttempts bounds the placements tried for literal text.
const maxLiteralAttempts = 64

// parseTime parses value with a strptime pattern.
//
// go-strftime builds a Go layout, where digits and words such as "Jan" or
// "PM" are layout elements, so it rejects them as literals. Those literal
// runs are matched here instead: each is swapped for a placeholder in the
// pattern and at a matching position of the value, leftmost placement first.
func parseTime(pattern, value string) (time.Time, error) {
	layout, literals := splitLiterals(pattern)
	if _, err := strftime.Parse(layout, ""); err != nil && !isMismatch(err) {
		return time.Time{}, err
	}
	if len(literals) == 0 {
		return strftime.Parse(layout, value)
	}

	m := literalMatch{layout: layout, literals: literals}
	if t, ok := m.try(value, 0, 0); ok {
		return t, nil
	}
	if m.err != nil {
		return time.Time{}, m.err
	}
	return time.Time{}, &time.ParseError{
		Layout:  pattern,
		Value:   value,
		Message: ": literal text of " + pattern + " not found",
	}
}

// splitLiterals replaces every literal run of pattern that go-strftime cannot
// parse with the placeholder and returns the runs in order.
func splitLiterals(pattern string) (string, []string) {
	var (
		layout   strings.Builder
		literals []string
		run      strings.Builder
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		lit := run.String()
		run.Reset()
		if _, err := strftime.Layout(lit); err != nil {
			literals = append(literals, lit)
			layout.WriteString(placeholder)
			return
		}
		layout.WriteString(lit)
	}

	for i := 0; i < len(pattern); {
		n := directiveLen(pattern[i:])
		if n == 0 {
			run.WriteByte(pattern[i])
			i++
			continue
		}
		flush()
		layout.WriteString(pattern[i : i+n])
		i += n
	}
	flush()
	return layout.String(), literals
}

// directiveLen returns the length of the directive at the start of s, or 0
// when s does not start with a complete one: %[-:][EO]c.
func directiveLen(s string) int {
	if len(s) < 2 || s[0] != '%' {
		return 0
	}
	i := 1
	if s[i] == '-' || s[i] == ':' {
		i++
	}
	if i < len(s) && (s[i] == 'E' || s[i] == 'O') {
		i++
	}
	if i >= len(s) {
		return 0
	}
	return i + 1
}

type literalMatch struct {
	layout   string
	literals []string
	attempts int
	// err is the first mismatch reported by the layout.
	err error
}

// try places literals[k:] at or after from and parses the result.
func (m *literalMatch) try(value string, from, k int) (time.Time, bool) {
	if k == len(m.literals) {
		if m.attempts >= maxLiteralAttempts {
			return time.Time{}, false
		}
		m.attempts++
		t, err := strftime.Parse(m.layout, value)
		if err != nil {
			if m.err == nil {
				m.err = err
			}
			return time.Time{}, false
		}
		return t, true
	}

	lit := m.literals[k]
	for i := from; i <= len(value)-len(lit); i++ {
		j := strings.Index(value[i:], lit)
		if j < 0 {
			break
		}
		i += j
		next := value[:i] + placeholder + value[i+len(lit):]
		if t, ok := m.try(next, i+len(placeholder), k+1); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func isMismatch(err error) bool {
	var perr *time.ParseError
	return errors.As(err, &perr)
}
