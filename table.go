package cellfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table assembles cells into a bordered table. Column widths are the widest
// value in each column; every cell of a column gets that width.
type Table struct {
	Border  BorderStyle           `yaml:"border,omitempty"`
	Align   []HorizontalAlignment `yaml:"align,omitempty"`
	Header  []any                 `yaml:"header,omitempty"`
	Rows    [][]any               `yaml:"rows,omitempty"`
	Footer  []any                 `yaml:"footer,omitempty"`
	Caption string                `yaml:"caption,omitempty"`
}

// Render writes the table to w, one line per rule or content row. The
// caption, if any, follows the bottom rule.
func (t *Table) Render(w io.Writer, withStyle bool) error {
	lines, err := t.Lines(withStyle)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if t.Caption != "" && len(lines) > 0 {
		if _, err := fmt.Fprintln(w, t.Caption); err != nil {
			return err
		}
	}
	return nil
}

// Lines renders the table without the caption. A table with no columns
// renders no lines.
func (t *Table) Lines(withStyle bool) ([]string, error) {
	numCols := colCount(t.Header, t.Rows, t.Footer)
	if numCols == 0 {
		return nil, nil
	}
	widths := computeWidths(numCols, t.Header, t.Rows, t.Footer)
	aligns := extendAligns(t.Align, numCols)

	var lines []string
	rule := func(y VerticalAlignment) error {
		line, err := t.rule(widths, y)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		return nil
	}
	row := func(cells []any, header bool) error {
		line, err := t.row(cells, widths, aligns, header, withStyle)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		return nil
	}

	if err := rule(AlignTop); err != nil {
		return nil, err
	}
	if len(t.Header) > 0 {
		if err := row(t.Header, true); err != nil {
			return nil, err
		}
		if len(t.Rows) > 0 || len(t.Footer) > 0 {
			if err := rule(AlignMiddle); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range t.Rows {
		if err := row(r, false); err != nil {
			return nil, err
		}
	}
	if len(t.Footer) > 0 {
		if len(t.Rows) > 0 {
			if err := rule(AlignMiddle); err != nil {
				return nil, err
			}
		}
		if err := row(t.Footer, false); err != nil {
			return nil, err
		}
	}
	if err := rule(AlignBottom); err != nil {
		return nil, err
	}
	return lines, nil
}

func (t *Table) rule(widths []int, y VerticalAlignment) (string, error) {
	var sb strings.Builder
	for i, width := range widths {
		c, err := NewSeparator(
			WithWidth(width),
			WithXPosition(columnPosition(i, len(widths))),
			WithYPosition(y),
			WithSingleColumn(len(widths) == 1),
			WithBorder(t.Border),
		)
		if err != nil {
			return "", err
		}
		sb.WriteString(c.String())
	}
	return sb.String(), nil
}

func (t *Table) row(cells []any, widths []int, aligns []HorizontalAlignment, header, withStyle bool) (string, error) {
	var sb strings.Builder
	for i, width := range widths {
		var v any = ""
		if i < len(cells) && cells[i] != nil {
			v = cells[i]
		}
		c, err := NewContent(
			WithWidth(width),
			WithXPosition(columnPosition(i, len(widths))),
			WithSingleColumn(len(widths) == 1),
			WithBorder(t.Border),
			WithTextAlign(aligns[i]),
			WithHeader(header),
			WithContent(v),
		)
		if err != nil {
			return "", fmt.Errorf("column %d: %w", i, err)
		}
		sb.WriteString(c.Render(withStyle))
	}
	return sb.String(), nil
}

// columnPosition maps a column index to a row position. A single column is
// the leftmost cell; its right edge is handled by the single-column flag.
func columnPosition(i, n int) HorizontalAlignment {
	switch {
	case i == 0:
		return AlignLeft
	case i == n-1:
		return AlignRight
	default:
		return AlignCenter
	}
}

func colCount(header []any, rows [][]any, footer []any) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	if len(footer) > n {
		n = len(footer)
	}
	return n
}

func computeWidths(numCols int, header []any, rows [][]any, footer []any) []int {
	widths := make([]int, numCols)
	measure := func(cells []any) {
		for i, cell := range cells {
			if cell == nil {
				continue
			}
			if w := runewidth.StringWidth(fmt.Sprint(cell)); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func extendAligns(aligns []HorizontalAlignment, numCols int) []HorizontalAlignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]HorizontalAlignment, numCols)
	copy(extended, aligns)
	return extended
}
