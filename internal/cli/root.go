// Package cli implements the textfn command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/shapestone/shape-dsv/internal/config"
	"github.com/shapestone/shape-dsv/pkg/dsv"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	logger *log.Logger

	// Flags
	cfgFile       string
	verbose       bool
	outputDialect string

	cfg    *config.Config
	output dsv.Dialect
}

// NewRootCommand builds the command tree writing rows to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	return newRootCommand(out, errOut, newLogger(errOut))
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
}

func newRootCommand(out, errOut io.Writer, logger *log.Logger) *cobra.Command {
	a := &app{
		out:    out,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "textfn",
		Short: "Split, join and reformat delimited text",
		Long: `textfn runs the text operators strsplit, strsplitv, strjoin and dateformat.

Operators take name:value options such as dialect:tsv, delimiter:\t,
quotechar:', escapechar:\\, doublequote:f, quoting:QUOTE_ALL and
skipinitialspace:t.

Examples:
  textfn split "First Second Third"
  textfn splitv "a,b,c" dialect:csv
  textfn join First Second 100 params delimiter:%
  textfn dateformat 28-01-09
  textfn sql "select strjoin('a', 'b', 'params', 'dialect:tsv')"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/textfn/textfn.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.outputDialect, "output-dialect", "o", "", "dialect used to print rows (csv or tsv)")

	rootCmd.AddCommand(
		a.newSplitCommand("split", "Split text into rows of fields", false),
		a.newSplitCommand("splitv", "Split text into one field per row", true),
		a.newJoinCommand(),
		a.newDateFormatCommand(),
		a.newSQLCommand(),
		a.newFunctionsCommand(),
	)

	return rootCmd
}

// setup loads configuration and applies it where no flag overrides it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("verbose") {
		a.verbose = cfg.Verbose
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if path != "" {
		a.logger.Debug("loaded config", "path", path)
	}

	name := a.outputDialect
	if name == "" {
		name = cfg.OutputDialect
	}
	d, ok := dsv.LookupDialect(name)
	if !ok {
		return fmt.Errorf("unknown output dialect %q", name)
	}
	a.output = d
	a.logger.Debug("output dialect", "name", name)
	return nil
}

// writeRows prints rows with the output dialect.
func (a *app) writeRows(rows [][]string) error {
	w := dsv.NewWriter(a.out, a.output)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Execute runs the tool and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	logger := newLogger(os.Stderr)
	rootCmd := newRootCommand(os.Stdout, os.Stderr, logger)
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(logError(logger)),
	); err != nil {
		return 1
	}
	return 0
}

// logError reports command failures through the logger.
func logError(logger *log.Logger) fang.ErrorHandler {
	return func(_ io.Writer, _ fang.Styles, err error) {
		logger.Error("command failed", "err", err)
	}
}
