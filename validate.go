package cellfmt

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// ValidateWidth reports whether w can be used as a cell width.
func ValidateWidth(w any) error {
	return validateSize("width", w)
}

// ValidatePaddingLeft reports whether p can be used as left padding.
func ValidatePaddingLeft(p any) error {
	return validateSize("paddingLeft", p)
}

// ValidatePaddingRight reports whether p can be used as right padding.
func ValidatePaddingRight(p any) error {
	return validateSize("paddingRight", p)
}

// ValidateXPosition reports whether pos is a HorizontalAlignment member.
func ValidateXPosition(pos any) error {
	return validateHorizontal("xPosition", pos)
}

// ValidateTextAlign reports whether align is a HorizontalAlignment member.
func ValidateTextAlign(align any) error {
	return validateHorizontal("textAlign", align)
}

// ValidateYPosition reports whether pos is a VerticalAlignment member.
func ValidateYPosition(pos any) error {
	v, ok := pos.(VerticalAlignment)
	if !ok || !v.valid() {
		return fmt.Errorf("%w: yPosition must be a VerticalAlignment, got %#v", ErrTypeMismatch, pos)
	}
	return nil
}

// ValidateSingleColumn reports whether flag is a bool.
func ValidateSingleColumn(flag any) error {
	if _, ok := flag.(bool); !ok {
		return fmt.Errorf("%w: singleColumn must be a bool, got %T", ErrTypeMismatch, flag)
	}
	return nil
}

// ValidateBorder reports whether b is a known BorderStyle.
func ValidateBorder(b any) error {
	v, ok := b.(BorderStyle)
	if !ok || !v.valid() {
		return fmt.Errorf("%w: border must be a BorderStyle, got %#v", ErrTypeMismatch, b)
	}
	return nil
}

// ValidateContent reports whether the unstyled form of raw fits in width.
// The width itself is validated first. Length is the terminal display width
// from go-runewidth, not a character count: wide CJK characters count 2 and
// combining marks count 0, so the check agrees with how the renderers pad.
func ValidateContent(raw any, width any) error {
	if err := ValidateWidth(width); err != nil {
		return err
	}
	w, _ := toInt(width)
	s := fmt.Sprint(raw)
	if n := runewidth.StringWidth(s); n > w {
		return fmt.Errorf("%w: content %q is %d wide, cell width is %d", ErrOutOfRange, s, n, w)
	}
	return nil
}

func validateHorizontal(field string, v any) error {
	a, ok := v.(HorizontalAlignment)
	if !ok || !a.valid() {
		return fmt.Errorf("%w: %s must be a HorizontalAlignment, got %#v", ErrTypeMismatch, field, v)
	}
	return nil
}

func validateSize(field string, v any) error {
	n, ok := toInt(v)
	if !ok {
		return fmt.Errorf("%w: %s must be an integer, got %T", ErrTypeMismatch, field, v)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrOutOfRange, field, n)
	}
	return nil
}

// toInt converts integer kinds and integral floats. Unsigned values above
// math.MaxInt are reported as not convertible.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
