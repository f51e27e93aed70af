package textfn

import (
	"fmt"

	"github.com/ncruces/go-strftime"
)

// Default date patterns of DateFormat.
const (
	DefaultInputPattern  = "%d-%m-%y"
	DefaultOutputPattern = "%Y-%m-%d"
)

// DateFormat reparses a date string: DateFormat(date, [in, [out]]).
//
// The date is parsed with the strptime pattern in (default %d-%m-%y) and
// formatted with the strftime pattern out (default %Y-%m-%d). A date that
// does not match in yields null, as does a null argument. Arguments after
// the third are ignored. Literal text in the input pattern, digits included,
// must appear verbatim in the date. A pattern the engine cannot use is an
// *OperatorError.
//
//	v, _ := textfn.DateFormat(textfn.Text("28-01-09"))
//	// 2009-01-28
func DateFormat(args ...Value) (Value, error) {
	const fn = "dateformat"
	if len(args) == 0 {
		return Null(), noInput(fn)
	}
	if len(args) > 3 {
		args = args[:3]
	}
	if anyNull(args) {
		return Null(), nil
	}

	in, out := DefaultInputPattern, DefaultOutputPattern
	if len(args) > 1 {
		in = args[1].String()
	}
	if len(args) > 2 {
		out = args[2].String()
	}

	t, err := parseTime(in, args[0].String())
	if err != nil {
		if isMismatch(err) {
			return Null(), nil
		}
		return Null(), &OperatorError{Func: fn, Err: fmt.Errorf("input pattern %q: %w", in, err)}
	}
	return Text(strftime.Format(out, t)), nil
}
