package cli

import (
	"github.com/shapestone/shape-dsv/pkg/textfn"
	"github.com/spf13/cobra"
)

func (a *app) newDateFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dateformat DATE [INPUT-PATTERN [OUTPUT-PATTERN]]",
		Short: "Reformat a date, printing NULL when it does not match",
		Long: `Reformat a date with strftime patterns.

The input pattern defaults to ` + textfn.DefaultInputPattern + ` and the output pattern to ` + textfn.DefaultOutputPattern + `.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := textfn.DateFormat(textValues(args)...)
			if err != nil {
				return err
			}
			if v.IsNull() {
				a.logger.Debug("date did not match input pattern", "date", args[0])
			}
			return a.printValue(v)
		},
	}
}
