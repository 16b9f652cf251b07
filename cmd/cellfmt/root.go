package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bjaus/cellfmt/internal/logger"
)

type rootOptions struct {
	logLevel int8
	plain    bool
}

// styled reports whether output gets color codes: not with --plain, and not
// when color.NoColor is set (NO_COLOR, or stdout is not a terminal).
func (o *rootOptions) styled() bool {
	return useStyle(o.plain, color.NoColor)
}

func useStyle(plain, noColor bool) bool {
	return !plain && !noColor
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "cellfmt",
		Short:         "Render bordered tables and table cells for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lgr := logger.Get(opts.logLevel)
			lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())
			cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))
		},
	}
	cmd.PersistentFlags().Int8Var(&opts.logLevel, "log-level", 0, "log level: -1 debug, 0 info, 1 warn, 2 error")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "render without color codes")

	cmd.AddCommand(newRenderCmd(opts), newCellCmd(opts))
	return cmd
}
