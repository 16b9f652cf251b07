package cellfmt

import "strings"

// separatorRenderer draws one cell's share of a horizontal rule.
type separatorRenderer struct {
	width, paddingLeft, paddingRight int
	xPosition                        HorizontalAlignment
	yPosition                        VerticalAlignment
	singleColumn                     bool
	glyphs                           Glyphs
}

// render only emits a left corner for the leftmost cell; every other cell
// shares the right corner of its left neighbor.
func (r separatorRenderer) render() string {
	var sb strings.Builder
	if r.xPosition == AlignLeft {
		sb.WriteString(r.glyphs.Corner(r.yPosition, AlignLeft))
	}
	sb.WriteString(strings.Repeat(r.glyphs.Horizontal, r.width+r.paddingLeft+r.paddingRight))
	if r.xPosition == AlignRight || r.singleColumn {
		sb.WriteString(r.glyphs.Corner(r.yPosition, AlignRight))
	} else {
		sb.WriteString(r.glyphs.Corner(r.yPosition, AlignCenter))
	}
	return sb.String()
}

// contentRenderer draws one cell's share of a content line.
type contentRenderer struct {
	width, paddingLeft, paddingRight int
	content                          *Text
	xPosition                        HorizontalAlignment
	textAlign                        HorizontalAlignment
	withStyle                        bool
	glyphs                           Glyphs
}

func (r contentRenderer) render() string {
	left, right := distributeSlack(r.width-r.content.Len(), r.textAlign)

	var sb strings.Builder
	if r.xPosition == AlignLeft {
		sb.WriteString(r.glyphs.Vertical)
	}
	sb.WriteString(strings.Repeat(" ", r.paddingLeft+left))
	if r.withStyle {
		sb.WriteString(r.content.Build())
	} else {
		sb.WriteString(r.content.Plain())
	}
	sb.WriteString(strings.Repeat(" ", right+r.paddingRight))
	sb.WriteString(r.glyphs.Vertical)
	return sb.String()
}

// distributeSlack splits slack between the two sides of the text. Odd slack
// under center alignment puts the extra space on the right. Negative slack
// (content wider than the cell after a width change) is treated as none.
func distributeSlack(slack int, align HorizontalAlignment) (left, right int) {
	if slack <= 0 {
		return 0, 0
	}
	switch align {
	case AlignRight:
		return slack, 0
	case AlignCenter:
		left = slack / 2
		return left, slack - left
	default:
		return 0, slack
	}
}
