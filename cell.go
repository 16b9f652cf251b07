package cellfmt

import "fmt"

// Kind identifies a cell variant.
type Kind int

const (
	// KindCell is the abstract base. It cannot be constructed.
	KindCell Kind = iota
	KindSeparator
	KindContent
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindSeparator:
		return "separator"
	case KindContent:
		return "content"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cell is one border-wrapped unit of table output. The set of
// implementations is closed: *SeparatorCell and *ContentCell.
type Cell interface {
	fmt.Stringer

	Kind() Kind
	Geometry() Geometry

	Width() int
	SetWidth(int) error
	PaddingLeft() int
	SetPaddingLeft(int) error
	PaddingRight() int
	SetPaddingRight(int) error
	XPosition() HorizontalAlignment
	SetXPosition(HorizontalAlignment) error
	SingleColumn() bool
	SetSingleColumn(bool) error
	Border() BorderStyle
	SetBorder(BorderStyle) error

	sealed()
}

// Geometry is a value snapshot of the properties shared by every cell.
type Geometry struct {
	Width        int
	PaddingLeft  int
	PaddingRight int
	XPosition    HorizontalAlignment
	SingleColumn bool
	Border       BorderStyle
}

// New constructs a cell of the given kind. Asking for KindCell fails with
// ErrAbstractInstantiation.
func New(kind Kind, opts ...Option) (Cell, error) {
	switch kind {
	case KindSeparator:
		c, err := NewSeparator(opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindContent:
		c, err := NewContent(opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindCell:
		return nil, fmt.Errorf("%w: %s is abstract, construct a separator or content cell", ErrAbstractInstantiation, kind)
	default:
		return nil, fmt.Errorf("%w: unknown cell kind %s", ErrTypeMismatch, kind)
	}
}

// geometry is the state shared by all cells. It is embedded by each variant
// and never handed out on its own.
type geometry struct {
	width        int
	paddingLeft  int
	paddingRight int
	xPosition    HorizontalAlignment
	singleColumn bool
	border       BorderStyle
}

func newGeometry(o *options) (geometry, error) {
	var g geometry
	if err := g.SetWidth(o.width); err != nil {
		return geometry{}, err
	}
	if err := g.SetPaddingLeft(o.paddingLeft); err != nil {
		return geometry{}, err
	}
	if err := g.SetPaddingRight(o.paddingRight); err != nil {
		return geometry{}, err
	}
	if err := g.SetXPosition(o.xPosition); err != nil {
		return geometry{}, err
	}
	if err := g.SetSingleColumn(o.singleColumn); err != nil {
		return geometry{}, err
	}
	if err := g.SetBorder(o.border); err != nil {
		return geometry{}, err
	}
	return g, nil
}

func (g *geometry) sealed() {}

// Geometry returns a snapshot of the shared properties.
func (g *geometry) Geometry() Geometry {
	return Geometry{
		Width:        g.width,
		PaddingLeft:  g.paddingLeft,
		PaddingRight: g.paddingRight,
		XPosition:    g.xPosition,
		SingleColumn: g.singleColumn,
		Border:       g.border,
	}
}

// Width returns the content width, excluding padding and borders.
func (g *geometry) Width() int { return g.width }

// SetWidth sets the content width. Content already stored in a content cell
// is not re-checked against the new width.
func (g *geometry) SetWidth(w int) error {
	if err := ValidateWidth(w); err != nil {
		return err
	}
	g.width = w
	return nil
}

// PaddingLeft returns the number of spaces before the content.
func (g *geometry) PaddingLeft() int { return g.paddingLeft }

// SetPaddingLeft sets the number of spaces before the content.
func (g *geometry) SetPaddingLeft(p int) error {
	if err := ValidatePaddingLeft(p); err != nil {
		return err
	}
	g.paddingLeft = p
	return nil
}

// PaddingRight returns the number of spaces after the content.
func (g *geometry) PaddingRight() int { return g.paddingRight }

// SetPaddingRight sets the number of spaces after the content.
func (g *geometry) SetPaddingRight(p int) error {
	if err := ValidatePaddingRight(p); err != nil {
		return err
	}
	g.paddingRight = p
	return nil
}

// XPosition returns the cell's position within its row.
func (g *geometry) XPosition() HorizontalAlignment { return g.xPosition }

// SetXPosition sets the cell's position within its row.
func (g *geometry) SetXPosition(pos HorizontalAlignment) error {
	if err := ValidateXPosition(pos); err != nil {
		return err
	}
	g.xPosition = pos
	return nil
}

// SingleColumn reports whether the cell belongs to a one-column table.
func (g *geometry) SingleColumn() bool { return g.singleColumn }

// SetSingleColumn marks the cell as part of a one-column table.
func (g *geometry) SetSingleColumn(v bool) error {
	if err := ValidateSingleColumn(v); err != nil {
		return err
	}
	g.singleColumn = v
	return nil
}

// Border returns the border style.
func (g *geometry) Border() BorderStyle { return g.border }

// SetBorder sets the border style.
func (g *geometry) SetBorder(b BorderStyle) error {
	if err := ValidateBorder(b); err != nil {
		return err
	}
	g.border = b
	return nil
}

// --- Options ---

// Option configures a cell at construction. Options that do not apply to a
// variant are ignored, so one option list can build both separators and
// content cells of a column.
type Option func(*options)

type options struct {
	width        int
	paddingLeft  int
	paddingRight int
	xPosition    HorizontalAlignment
	singleColumn bool
	border       BorderStyle
	yPosition    VerticalAlignment
	content      any
	textAlign    HorizontalAlignment
	header       bool
}

func buildOptions(opts []Option) *options {
	o := &options{
		paddingLeft:  1,
		paddingRight: 1,
		xPosition:    AlignCenter,
		border:       BorderNormal,
		yPosition:    AlignMiddle,
		content:      "",
		textAlign:    AlignLeft,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithWidth sets the content width. Default 0.
func WithWidth(w int) Option { return func(o *options) { o.width = w } }

// WithPaddingLeft sets the left padding. Default 1.
func WithPaddingLeft(p int) Option { return func(o *options) { o.paddingLeft = p } }

// WithPaddingRight sets the right padding. Default 1.
func WithPaddingRight(p int) Option { return func(o *options) { o.paddingRight = p } }

// WithPadding sets both paddings.
func WithPadding(left, right int) Option {
	return func(o *options) {
		o.paddingLeft = left
		o.paddingRight = right
	}
}

// WithXPosition sets the position within the row. Default AlignCenter.
func WithXPosition(pos HorizontalAlignment) Option { return func(o *options) { o.xPosition = pos } }

// WithSingleColumn marks the cell as part of a one-column table.
func WithSingleColumn(v bool) Option { return func(o *options) { o.singleColumn = v } }

// WithBorder sets the border style. Default BorderNormal.
func WithBorder(b BorderStyle) Option { return func(o *options) { o.border = b } }

// WithYPosition sets a separator's row position. Default AlignMiddle.
func WithYPosition(pos VerticalAlignment) Option { return func(o *options) { o.yPosition = pos } }

// WithContent sets a content cell's raw value. Default "".
func WithContent(v any) Option { return func(o *options) { o.content = v } }

// WithTextAlign sets a content cell's text alignment. Default AlignLeft.
func WithTextAlign(align HorizontalAlignment) Option { return func(o *options) { o.textAlign = align } }

// WithHeader marks a content cell as a header. It can only be set here.
func WithHeader(v bool) Option { return func(o *options) { o.header = v } }
