package cellfmt

import (
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Text is a styled-text builder. It keeps the plain text and the style
// attributes apart so layout code can measure the visible width while output
// code renders the escape sequences.
//
//	t := cellfmt.NewText().Append("total").Bold().Color(color.FgCyan)
//	fmt.Println(t.Build(), t.Len())
//
// Build always emits escape sequences, whatever color.NoColor says. Callers
// that want plain output use Plain, or ask a cell to render without style.
//
// A nil *Text reads as empty text.
type Text struct {
	sb    strings.Builder
	attrs []color.Attribute
}

// NewText returns an empty builder.
func NewText() *Text {
	return &Text{}
}

// Append adds s to the text.
func (t *Text) Append(s string) *Text {
	t.sb.WriteString(s)
	return t
}

// Bold marks the text bold.
func (t *Text) Bold() *Text {
	return t.add(color.Bold)
}

// Color sets a foreground or background color attribute.
func (t *Text) Color(attr color.Attribute) *Text {
	return t.add(attr)
}

// Reset drops all style attributes. The text is kept.
func (t *Text) Reset() *Text {
	t.attrs = nil
	return t
}

func (t *Text) add(attr color.Attribute) *Text {
	if !slices.Contains(t.attrs, attr) {
		t.attrs = append(t.attrs, attr)
	}
	return t
}

// Attributes returns a copy of the style attributes in the order they were set.
func (t *Text) Attributes() []color.Attribute {
	if t == nil {
		return nil
	}
	return slices.Clone(t.attrs)
}

// Plain returns the unstyled text.
func (t *Text) Plain() string {
	if t == nil {
		return ""
	}
	return t.sb.String()
}

// Len returns the visible width of the text. Style codes are never counted.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return runewidth.StringWidth(t.sb.String())
}

// Build returns the text wrapped in its style codes.
func (t *Text) Build() string {
	if t == nil || len(t.attrs) == 0 {
		return t.Plain()
	}
	c := color.New(t.attrs...)
	c.EnableColor()
	return c.Sprint(t.sb.String())
}

// String implements fmt.Stringer with the styled rendering.
func (t *Text) String() string {
	return t.Build()
}
