package cli

import (
	"fmt"

	"github.com/shapestone/shape-dsv/pkg/sqlitefn"
	"github.com/spf13/cobra"
)

func (a *app) newSQLCommand() *cobra.Command {
	var (
		dsn     string
		null    string
		noTitle bool
	)

	cmd := &cobra.Command{
		Use:   "sql QUERY",
		Short: "Run a query with the scalar operators available as SQL functions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sqlitefn.Open(dsn)
			if err != nil {
				return err
			}
			defer db.Close()
			a.logger.Debug("opened database", "driver", sqlitefn.DriverName(), "type", sqlitefn.DriverType(), "dsn", dsn)

			rows, err := db.QueryContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer rows.Close()

			columns, err := rows.Columns()
			if err != nil {
				return err
			}

			var out [][]string
			if !noTitle {
				out = append(out, columns)
			}
			for rows.Next() {
				dest := make([]any, len(columns))
				ptrs := make([]any, len(columns))
				for i := range dest {
					ptrs[i] = &dest[i]
				}
				if err := rows.Scan(ptrs...); err != nil {
					return err
				}
				rec := make([]string, len(columns))
				for i, v := range dest {
					rec[i] = sqlText(v, null)
				}
				out = append(out, rec)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			return a.writeRows(out)
		},
	}

	cmd.Flags().StringVar(&dsn, "db", ":memory:", "SQLite data source name")
	cmd.Flags().StringVar(&null, "null", "NULL", "text printed for SQL NULL")
	cmd.Flags().BoolVar(&noTitle, "no-header", false, "omit the column names")
	return cmd
}

func sqlText(v any, null string) string {
	switch x := v.(type) {
	case nil:
		return null
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
