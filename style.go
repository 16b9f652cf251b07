package cellfmt

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
)

// Content styles. Header beats numeric; everything else is plain.
var (
	headerStyle  = []color.Attribute{color.Bold, color.FgCyan}
	numericStyle = []color.Attribute{color.FgYellow}
	plainStyle   = []color.Attribute{color.FgWhite}
)

// HeaderStyle returns the attributes applied to header content.
func HeaderStyle() []color.Attribute { return slices.Clone(headerStyle) }

// NumericStyle returns the attributes applied to numeric content.
func NumericStyle() []color.Attribute { return slices.Clone(numericStyle) }

// PlainStyle returns the attributes applied to all other content.
func PlainStyle() []color.Attribute { return slices.Clone(plainStyle) }

// StyleContent wraps fmt.Sprint(raw) in a Text styled by its role: header
// content is always bold cyan, numeric values are yellow and anything else is
// white.
func StyleContent(raw any, header bool) *Text {
	t := NewText().Append(fmt.Sprint(raw))
	var attrs []color.Attribute
	switch {
	case header:
		attrs = headerStyle
	case isNumeric(raw):
		attrs = numericStyle
	default:
		attrs = plainStyle
	}
	for _, a := range attrs {
		t.Color(a)
	}
	return t
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}
