package cli

import (
	"github.com/shapestone/shape-dsv/pkg/textfn"
	"github.com/spf13/cobra"
)

func (a *app) newSplitCommand(name, short string, flatten bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " TEXT [OPTION...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mergeOptions(a.cfg.SplitOptions, args[1:])
			a.logger.Debug("split", "flatten", flatten, "options", opts)

			values := append([]textfn.Value{textfn.Text(args[0])}, textValues(opts)...)
			op := textfn.StrSplit
			if flatten {
				op = textfn.StrSplitV
			}
			rows, err := op(values...)
			if err != nil {
				return err
			}
			defer rows.Close()

			out, err := rows.Collect()
			if err != nil {
				return err
			}
			return a.writeRows(out)
		},
	}
}
