package cli

import (
	"strconv"

	"github.com/shapestone/shape-dsv/pkg/textfn"
	"github.com/spf13/cobra"
)

func (a *app) newFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the available operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textfn.DefaultRegistry()
			out := [][]string{{"name", "kind", "args"}}
			for _, fn := range r.Functions() {
				kind := "scalar"
				if _, ok := fn.(*textfn.MultisetFunc); ok {
					kind = "multiset"
				}
				nargs := "variadic"
				if fn.NumArgs() >= 0 {
					nargs = strconv.Itoa(fn.NumArgs())
				}
				out = append(out, []string{fn.Name(), kind, nargs})
			}
			return a.writeRows(out)
		},
	}
}
