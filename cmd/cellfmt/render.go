package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/cellfmt"
	"github.com/bjaus/cellfmt/internal/logger"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var border string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML table document",
		Example: "  cellfmt render table.yaml\n" +
			"  cat table.yaml | cellfmt render --border double\n",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lgr := logger.FromContext(cmd.Context())

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			tbl, err := cellfmt.DecodeTable(in)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if cmd.Flags().Changed("border") {
				b, err := cellfmt.ParseBorderStyle(border)
				if err != nil {
					return err
				}
				tbl.Border = b
			}
			lgr.V(1).Info("rendering table",
				"source", name,
				"border", tbl.Border.String(),
				"rows", len(tbl.Rows),
				"header", len(tbl.Header) > 0,
			)
			return tbl.Render(cmd.OutOrStdout(), root.styled())
		},
	}
	cmd.Flags().StringVar(&border, "border", "", "override the document's border style (normal, rounded, heavy, double, ascii)")
	return cmd
}

// openInput returns the named file, or stdin for "-" and no argument.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}
