package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjaus/cellfmt"
	"github.com/bjaus/cellfmt/internal/logger"
)

var cellKinds = map[string]cellfmt.Kind{
	cellfmt.KindCell.String():      cellfmt.KindCell,
	cellfmt.KindSeparator.String(): cellfmt.KindSeparator,
	cellfmt.KindContent.String():   cellfmt.KindContent,
}

type cellFlags struct {
	kind         string
	width        int
	paddingLeft  int
	paddingRight int
	x, y, align  string
	border       string
	singleColumn bool
	header       bool
}

func newCellCmd(root *rootOptions) *cobra.Command {
	f := &cellFlags{}
	cmd := &cobra.Command{
		Use:   "cell [content]",
		Short: "Render a single separator or content cell",
		Example: "  cellfmt cell --kind separator --width 5 --x left --y bottom --single-column\n" +
			"  cellfmt cell --width 10 --align center hello\n",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(args)
			if err != nil {
				return err
			}
			kind, ok := cellKinds[f.kind]
			if !ok {
				return fmt.Errorf("%w: unknown kind %q", cellfmt.ErrTypeMismatch, f.kind)
			}

			c, err := cellfmt.New(kind, opts...)
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).V(1).Info("rendering cell", "kind", kind.String(), "width", c.Width())

			out := c.String()
			if content, ok := c.(*cellfmt.ContentCell); ok {
				out = content.Render(root.styled())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "content", "cell kind: content, separator or cell (abstract, always fails)")
	fl.IntVar(&f.width, "width", 0, "content width")
	fl.IntVar(&f.paddingLeft, "padding-left", 1, "spaces before the content")
	fl.IntVar(&f.paddingRight, "padding-right", 1, "spaces after the content")
	fl.StringVar(&f.x, "x", "center", "position in the row: left, center, right")
	fl.StringVar(&f.y, "y", "center", "separator row position: top, center, bottom")
	fl.StringVar(&f.align, "align", "left", "text alignment: left, center, right")
	fl.StringVar(&f.border, "border", "normal", "border style")
	fl.BoolVar(&f.singleColumn, "single-column", false, "the cell belongs to a one-column table")
	fl.BoolVar(&f.header, "header", false, "style the content as a header")
	return cmd
}

func (f *cellFlags) options(args []string) ([]cellfmt.Option, error) {
	x, err := cellfmt.ParseHorizontalAlignment(f.x)
	if err != nil {
		return nil, err
	}
	y, err := cellfmt.ParseVerticalAlignment(f.y)
	if err != nil {
		return nil, err
	}
	align, err := cellfmt.ParseHorizontalAlignment(f.align)
	if err != nil {
		return nil, err
	}
	border, err := cellfmt.ParseBorderStyle(f.border)
	if err != nil {
		return nil, err
	}
	opts := []cellfmt.Option{
		cellfmt.WithWidth(f.width),
		cellfmt.WithPadding(f.paddingLeft, f.paddingRight),
		cellfmt.WithXPosition(x),
		cellfmt.WithYPosition(y),
		cellfmt.WithTextAlign(align),
		cellfmt.WithBorder(border),
		cellfmt.WithSingleColumn(f.singleColumn),
		cellfmt.WithHeader(f.header),
	}
	if len(args) == 1 {
		opts = append(opts, cellfmt.WithContent(parseValue(args[0])))
	}
	return opts, nil
}

// parseValue turns numeric arguments into numbers so they get numeric styling.
func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
