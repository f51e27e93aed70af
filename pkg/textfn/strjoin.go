package textfn

import (
	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// ParamsMarker separates the values of StrJoin from its dialect options.
const ParamsMarker = "params"

// StrJoin encodes its arguments as one delimited line.
//
// Arguments before the first text argument equal to ParamsMarker are the
// values; the arguments after it are name:value dialect options. Without
// options the line is comma separated with minimal quoting. A null argument
// anywhere makes the result null.
//
//	v, _ := textfn.StrJoin(textfn.Values("First", "Second", "Third", 100)...)
//	// First,Second,Third,100
func StrJoin(args ...Value) (Value, error) {
	if anyNull(args) {
		return Null(), nil
	}

	values := args
	var opts []Value
	for i, a := range args {
		if a.Type() == TypeText && a.String() == ParamsMarker {
			values, opts = args[:i], args[i+1:]
			break
		}
	}

	rest, d, err := dsv.ResolveTokens(tokens(opts), dsv.DefaultDialect())
	if err != nil {
		return Null(), err
	}
	if len(rest) > 0 {
		return Null(), unknownArgument("strjoin", rest)
	}

	fields := make([]any, len(values))
	for i, v := range values {
		fields[i] = v.Any()
	}
	line, err := dsv.EncodeRecord(fields, d)
	if err != nil {
		return Null(), err
	}
	return Text(line), nil
}
