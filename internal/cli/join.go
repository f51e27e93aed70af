package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shapestone/shape-dsv/pkg/textfn"
	"github.com/spf13/cobra"
)

func (a *app) newJoinCommand() *cobra.Command {
	var typed bool

	cmd := &cobra.Command{
		Use:   "join VALUE... [params OPTION...]",
		Short: "Join values into one delimited line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, opts := args, []string(nil)
			if i := slices.Index(args, textfn.ParamsMarker); i >= 0 {
				values, opts = args[:i], args[i+1:]
			}
			opts = mergeOptions(a.cfg.JoinOptions, opts)
			a.logger.Debug("join", "values", len(values), "options", opts)

			joinArgs := make([]textfn.Value, 0, len(args)+len(opts))
			for _, v := range values {
				if typed {
					joinArgs = append(joinArgs, parseTyped(v))
				} else {
					joinArgs = append(joinArgs, textfn.Text(v))
				}
			}
			if len(opts) > 0 {
				joinArgs = append(joinArgs, textfn.Text(textfn.ParamsMarker))
				joinArgs = append(joinArgs, textValues(opts)...)
			}

			line, err := textfn.StrJoin(joinArgs...)
			if err != nil {
				return err
			}
			return a.printValue(line)
		},
	}

	cmd.Flags().BoolVar(&typed, "typed", false, "treat values that look like numbers as numbers")
	return cmd
}

// parseTyped returns an integer or real value when s is a number, else text.
func parseTyped(s string) textfn.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return textfn.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return textfn.Real(f)
	}
	return textfn.Text(s)
}

func (a *app) printValue(v textfn.Value) error {
	if v.IsNull() {
		_, err := fmt.Fprintln(a.out, "NULL")
		return err
	}
	_, err := fmt.Fprintln(a.out, v.String())
	return err
}
