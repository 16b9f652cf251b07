package cellfmt

import "fmt"

// SeparatorCell is one cell's share of a horizontal rule.
type SeparatorCell struct {
	geometry
	yPosition VerticalAlignment
}

var _ Cell = (*SeparatorCell)(nil)

// NewSeparator builds a separator cell. Content options are ignored.
func NewSeparator(opts ...Option) (*SeparatorCell, error) {
	o := buildOptions(opts)
	g, err := newGeometry(o)
	if err != nil {
		return nil, fmt.Errorf("separator: %w", err)
	}
	c := &SeparatorCell{geometry: g}
	if err := c.SetYPosition(o.yPosition); err != nil {
		return nil, fmt.Errorf("separator: %w", err)
	}
	return c, nil
}

// Kind returns KindSeparator.
func (c *SeparatorCell) Kind() Kind { return KindSeparator }

// YPosition returns the rule's row position.
func (c *SeparatorCell) YPosition() VerticalAlignment { return c.yPosition }

// SetYPosition sets the rule's row position.
func (c *SeparatorCell) SetYPosition(pos VerticalAlignment) error {
	if err := ValidateYPosition(pos); err != nil {
		return err
	}
	c.yPosition = pos
	return nil
}

// Clone returns an independent separator with the same properties.
func (c *SeparatorCell) Clone() *SeparatorCell {
	cp := *c
	return &cp
}

// String renders the rule segment.
func (c *SeparatorCell) String() string {
	return separatorRenderer{
		width:        c.width,
		paddingLeft:  c.paddingLeft,
		paddingRight: c.paddingRight,
		xPosition:    c.xPosition,
		yPosition:    c.yPosition,
		singleColumn: c.singleColumn,
		glyphs:       GlyphsFor(c.border),
	}.render()
}
