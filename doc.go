// Package cellfmt renders table cells as fixed-width, border-decorated text
// fragments for terminal display.
//
// A cell is either a [SeparatorCell], one segment of a horizontal rule, or a
// [ContentCell], one data slot of a content line. Both share a geometry
// (width, padding, position within the row, single-column flag and border
// style) and both render to a string that is concatenated with its
// neighbors to form a full line:
//
//	sep, _ := cellfmt.NewSeparator(
//		cellfmt.WithWidth(5),
//		cellfmt.WithXPosition(cellfmt.AlignLeft),
//		cellfmt.WithYPosition(cellfmt.AlignTop),
//	)
//	txt, _ := cellfmt.NewContent(
//		cellfmt.WithWidth(5),
//		cellfmt.WithXPosition(cellfmt.AlignLeft),
//		cellfmt.WithContent(42),
//	)
//	fmt.Println(sep)         // ┌───────┬
//	fmt.Println(txt.Plain()) // │ 42    │
//
// # Shared Borders
//
// Only the leftmost cell of a line (x position [AlignLeft]) draws a left
// border. Every other cell relies on the right border of its left neighbor.
// Separator corners are picked from a [Glyphs] table by the rule's row
// position and the joint's position: the rightmost cell closes with a right
// corner, interior joints use tees or crosses. In a single-column table the
// right edge is always a right corner.
//
// # Content
//
// Content is any value. It is rendered with [fmt.Sprint] and styled by role
// (see [StyleContent]): header cells are bold cyan, numeric values are
// yellow, the rest is white. Slack between the content and the cell width is
// distributed by the text alignment; centered text puts the odd space on the
// right. [ContentCell.Plain] renders without style codes.
//
// # Validation
//
// Every setter validates before it stores, so an invalid value is never
// observable. Failures wrap one of:
//
//   - [ErrTypeMismatch] — value of the wrong kind, or not a member of its enum
//   - [ErrOutOfRange] — negative size, or content wider than the cell
//   - [ErrAbstractInstantiation] — [New] asked for [KindCell]
//
// Content is only checked when it is written. Shrinking the width afterwards
// is allowed; the content then renders without alignment slack.
//
// # Tables
//
// [Table] computes column widths and assembles cells into complete lines.
// Tables can be read from YAML with [DecodeTable].
package cellfmt
