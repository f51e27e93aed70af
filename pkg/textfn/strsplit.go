package textfn

import (
	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// SplitDialect is the dialect used by StrSplit and StrSplitV when no
// dialect option is given: the system defaults with a space delimiter.
func SplitDialect() dsv.Dialect {
	d := dsv.DefaultDialect()
	d.Delimiter = ' '
	return d
}

// StrSplit splits its first argument into rows of fields.
//
// The remaining arguments are name:value dialect options. The result starts
// with the header C1..Cn sized from the first record, followed by every
// decoded record. Input that decodes to no records yields only the header C1.
//
//	rows, _ := textfn.StrSplit(textfn.Text("First Second Third"))
//	// C1 C2 C3
//	// First Second Third
func StrSplit(args ...Value) (*Rows, error) {
	return split("strsplit", args, false)
}

// StrSplitV is StrSplit with every field of every record on its own row
// under the single header C1.
func StrSplitV(args ...Value) (*Rows, error) {
	return split("strsplitv", args, true)
}

func split(fn string, args []Value, flatten bool) (*Rows, error) {
	if len(args) == 0 {
		return nil, noInput(fn)
	}

	rest, d, err := dsv.ResolveTokens(tokens(args[1:]), SplitDialect())
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, unknownArgument(fn, rest)
	}

	// A null text decodes as empty input.
	return newRows(dsv.NewReaderString(args[0].String(), d), flatten), nil
}

func tokens(args []Value) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.String()
	}
	return out
}
