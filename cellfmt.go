package cellfmt

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrOutOfRange            = errors.New("out of range")
	ErrAbstractInstantiation = errors.New("abstract instantiation")
	ErrInvalidDocument       = errors.New("invalid document")
)

// --- Value Types ---

// HorizontalAlignment is both a cell's position within its row and the
// alignment of text inside a content cell.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

var horizontalNames = [...]string{"LEFT", "CENTER", "RIGHT"}

// String returns the upper-case alignment name.
func (a HorizontalAlignment) String() string {
	if !a.valid() {
		return fmt.Sprintf("HorizontalAlignment(%d)", int(a))
	}
	return horizontalNames[a]
}

func (a HorizontalAlignment) valid() bool {
	return a >= AlignLeft && a <= AlignRight
}

// ParseHorizontalAlignment parses "left", "center" or "right", ignoring case.
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	for i, name := range horizontalNames {
		if strings.EqualFold(name, s) {
			return HorizontalAlignment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown horizontal alignment %q", ErrTypeMismatch, s)
}

// MarshalYAML encodes the alignment by lower-case name.
func (a HorizontalAlignment) MarshalYAML() (any, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, a)
	}
	return strings.ToLower(a.String()), nil
}

// UnmarshalYAML decodes an alignment name.
func (a *HorizontalAlignment) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseHorizontalAlignment(node.Value)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// VerticalAlignment is a separator cell's row position within the table:
// the top rule, an interior rule or the bottom rule.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var verticalNames = [...]string{"TOP", "CENTER", "BOTTOM"}

// String returns the upper-case position name. AlignMiddle prints as CENTER.
func (a VerticalAlignment) String() string {
	if !a.valid() {
		return fmt.Sprintf("VerticalAlignment(%d)", int(a))
	}
	return verticalNames[a]
}

func (a VerticalAlignment) valid() bool {
	return a >= AlignTop && a <= AlignBottom
}

// ParseVerticalAlignment parses "top", "center" (or "middle") and "bottom",
// ignoring case.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	if strings.EqualFold(s, "middle") {
		return AlignMiddle, nil
	}
	for i, name := range verticalNames {
		if strings.EqualFold(name, s) {
			return VerticalAlignment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown vertical alignment %q", ErrTypeMismatch, s)
}

// MarshalYAML encodes the position by lower-case name.
func (a VerticalAlignment) MarshalYAML() (any, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, a)
	}
	return strings.ToLower(a.String()), nil
}

// UnmarshalYAML decodes a position name.
func (a *VerticalAlignment) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseVerticalAlignment(node.Value)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// BorderStyle selects the glyph set used for borders.
type BorderStyle int

const (
	BorderNormal  BorderStyle = iota // ┌─┐└┘│┬┴├┤┼
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderASCII                      // +-+|
)

var borderNames = [...]string{"normal", "rounded", "heavy", "double", "ascii"}

// String returns the border style name.
func (b BorderStyle) String() string {
	if !b.valid() {
		return fmt.Sprintf("BorderStyle(%d)", int(b))
	}
	return borderNames[b]
}

func (b BorderStyle) valid() bool {
	return b >= BorderNormal && b <= BorderASCII
}

// BorderStyles returns all border styles.
func BorderStyles() []BorderStyle {
	out := make([]BorderStyle, len(borderNames))
	for i := range borderNames {
		out[i] = BorderStyle(i)
	}
	return out
}

// ParseBorderStyle parses a border style name, ignoring case.
func ParseBorderStyle(s string) (BorderStyle, error) {
	for i, name := range borderNames {
		if strings.EqualFold(name, s) {
			return BorderStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown border style %q", ErrTypeMismatch, s)
}

// MarshalYAML encodes the border style by name.
func (b BorderStyle) MarshalYAML() (any, error) {
	if !b.valid() {
		return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, b)
	}
	return b.String(), nil
}

// UnmarshalYAML decodes a border style name.
func (b *BorderStyle) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseBorderStyle(node.Value)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
