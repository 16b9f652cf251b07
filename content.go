package cellfmt

import "fmt"

// ContentCell is one data slot of a content line. The zero value is an empty
// cell at the left edge with no width or padding.
type ContentCell struct {
	geometry
	raw       any
	content   *Text
	textAlign HorizontalAlignment
	header    bool
}

var _ Cell = (*ContentCell)(nil)

// NewContent builds a content cell. Separator options are ignored. The
// content is checked against the width given in the same call.
func NewContent(opts ...Option) (*ContentCell, error) {
	o := buildOptions(opts)
	g, err := newGeometry(o)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	c := &ContentCell{geometry: g, header: o.header}
	if err := c.SetTextAlign(o.textAlign); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if err := c.SetContent(o.content); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return c, nil
}

// Kind returns KindContent.
func (c *ContentCell) Kind() Kind { return KindContent }

// IsHeader reports whether the cell was created as a header.
func (c *ContentCell) IsHeader() bool { return c.header }

// Content returns a copy of the styled content.
func (c *ContentCell) Content() *Text {
	t := NewText().Append(c.content.Plain())
	for _, a := range c.content.Attributes() {
		t.Color(a)
	}
	return t
}

// RawContent returns the value last passed to SetContent.
func (c *ContentCell) RawContent() any { return c.raw }

// SetContent validates raw against the current width, styles it and replaces
// the stored content.
func (c *ContentCell) SetContent(raw any) error {
	if err := ValidateContent(raw, c.width); err != nil {
		return err
	}
	c.raw = raw
	c.content = StyleContent(raw, c.header)
	return nil
}

// TextAlign returns the alignment of the content within the width.
func (c *ContentCell) TextAlign() HorizontalAlignment { return c.textAlign }

// SetTextAlign sets the alignment of the content within the width.
func (c *ContentCell) SetTextAlign(align HorizontalAlignment) error {
	if err := ValidateTextAlign(align); err != nil {
		return err
	}
	c.textAlign = align
	return nil
}

// Clone returns an independent content cell with the same properties. The
// styled content is rebuilt from the raw value, never shared.
func (c *ContentCell) Clone() *ContentCell {
	cp := &ContentCell{
		geometry:  c.geometry,
		raw:       c.raw,
		textAlign: c.textAlign,
		header:    c.header,
	}
	if c.content != nil {
		cp.content = StyleContent(c.raw, c.header)
	}
	return cp
}

// String renders the content line segment with style codes.
func (c *ContentCell) String() string {
	return c.Render(true)
}

// Plain renders the content line segment without style codes, for callers
// that measure output width.
func (c *ContentCell) Plain() string {
	return c.Render(false)
}

// Render renders the content line segment, with or without style codes.
func (c *ContentCell) Render(withStyle bool) string {
	return contentRenderer{
		width:        c.width,
		paddingLeft:  c.paddingLeft,
		paddingRight: c.paddingRight,
		content:      c.content,
		xPosition:    c.xPosition,
		textAlign:    c.textAlign,
		withStyle:    withStyle,
		glyphs:       GlyphsFor(c.border),
	}.render()
}
