package cellfmt

// Glyphs is a border glyph table. Corners are indexed by the row position of
// the rule and the horizontal position of the joint, so [AlignTop][AlignLeft]
// is the top-left corner and [AlignMiddle][AlignCenter] is the cross.
type Glyphs struct {
	Corners    [3][3]string
	Horizontal string
	Vertical   string
}

// Corner returns the glyph for the (y, x) joint.
func (g Glyphs) Corner(y VerticalAlignment, x HorizontalAlignment) string {
	return g.Corners[y][x]
}

var glyphSets = [...]Glyphs{
	BorderNormal: {
		Corners: [3][3]string{
			AlignTop:    {AlignLeft: "┌", AlignCenter: "┬", AlignRight: "┐"},
			AlignMiddle: {AlignLeft: "├", AlignCenter: "┼", AlignRight: "┤"},
			AlignBottom: {AlignLeft: "└", AlignCenter: "┴", AlignRight: "┘"},
		},
		Horizontal: "─", Vertical: "│",
	},
	BorderRounded: {
		Corners: [3][3]string{
			AlignTop:    {AlignLeft: "╭", AlignCenter: "┬", AlignRight: "╮"},
			AlignMiddle: {AlignLeft: "├", AlignCenter: "┼", AlignRight: "┤"},
			AlignBottom: {AlignLeft: "╰", AlignCenter: "┴", AlignRight: "╯"},
		},
		Horizontal: "─", Vertical: "│",
	},
	BorderHeavy: {
		Corners: [3][3]string{
			AlignTop:    {AlignLeft: "┏", AlignCenter: "┳", AlignRight: "┓"},
			AlignMiddle: {AlignLeft: "┣", AlignCenter: "╋", AlignRight: "┫"},
			AlignBottom: {AlignLeft: "┗", AlignCenter: "┻", AlignRight: "┛"},
		},
		Horizontal: "━", Vertical: "┃",
	},
	BorderDouble: {
		Corners: [3][3]string{
			AlignTop:    {AlignLeft: "╔", AlignCenter: "╦", AlignRight: "╗"},
			AlignMiddle: {AlignLeft: "╠", AlignCenter: "╬", AlignRight: "╣"},
			AlignBottom: {AlignLeft: "╚", AlignCenter: "╩", AlignRight: "╝"},
		},
		Horizontal: "═", Vertical: "║",
	},
	BorderASCII: {
		Corners: [3][3]string{
			AlignTop:    {AlignLeft: "+", AlignCenter: "+", AlignRight: "+"},
			AlignMiddle: {AlignLeft: "+", AlignCenter: "+", AlignRight: "+"},
			AlignBottom: {AlignLeft: "+", AlignCenter: "+", AlignRight: "+"},
		},
		Horizontal: "-", Vertical: "|",
	},
}

// GlyphsFor returns the glyph table for a border style. Unknown styles fall
// back to BorderNormal.
func GlyphsFor(b BorderStyle) Glyphs {
	if !b.valid() {
		return glyphSets[BorderNormal]
	}
	return glyphSets[b]
}
