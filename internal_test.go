package cellfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeSlack(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		slack       int
		align       HorizontalAlignment
		left, right int
	}{
		"left":            {slack: 4, align: AlignLeft, left: 0, right: 4},
		"right":           {slack: 4, align: AlignRight, left: 4, right: 0},
		"center even":     {slack: 4, align: AlignCenter, left: 2, right: 2},
		"center odd":      {slack: 5, align: AlignCenter, left: 2, right: 3},
		"center one":      {slack: 1, align: AlignCenter, left: 0, right: 1},
		"zero":            {slack: 0, align: AlignCenter},
		"negative clamps": {slack: -3, align: AlignRight},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			left, right := distributeSlack(tt.slack, tt.align)
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.right, right)
		})
	}
}

func TestSeparatorRendererCorners(t *testing.T) {
	t.Parallel()
	g := GlyphsFor(BorderDouble)
	r := separatorRenderer{width: 2, xPosition: AlignLeft, yPosition: AlignMiddle, glyphs: g}
	assert.Equal(t, "╠══╬", r.render())

	r.singleColumn = true
	assert.Equal(t, "╠══╣", r.render())

	r.xPosition = AlignRight
	r.singleColumn = false
	assert.Equal(t, "══╣", r.render())
}

func TestContentRendererWithStyle(t *testing.T) {
	t.Parallel()
	txt := StyleContent("ab", true)
	r := contentRenderer{
		width:        4,
		paddingLeft:  1,
		paddingRight: 1,
		content:      txt,
		xPosition:    AlignLeft,
		textAlign:    AlignRight,
		glyphs:       GlyphsFor(BorderNormal),
	}
	assert.Equal(t, "│   ab │", r.render())

	r.withStyle = true
	assert.Equal(t, "│   \x1b[1;36mab\x1b[22;0m │", r.render())
}

func TestContentCloneDoesNotShareText(t *testing.T) {
	t.Parallel()
	c, err := NewContent(WithWidth(4), WithContent("abc"))
	require.NoError(t, err)
	cp := c.Clone()
	assert.NotSame(t, c.content, cp.content)
	assert.Equal(t, c.content.Plain(), cp.content.Plain())
}

func TestSetContentReplacesText(t *testing.T) {
	t.Parallel()
	c, err := NewContent(WithWidth(4), WithContent("abc"))
	require.NoError(t, err)
	before := c.content
	require.NoError(t, c.SetContent("abc"))
	assert.NotSame(t, before, c.content)
}

func TestToInt(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		want int
		ok   bool
	}{
		"int":          {v: 5, want: 5, ok: true},
		"int32":        {v: int32(-2), want: -2, ok: true},
		"uint64 max":   {v: uint64(math.MaxUint64), ok: false},
		"float":        {v: 3.0, want: 3, ok: true},
		"float32":      {v: float32(2), want: 2, ok: true},
		"fraction":     {v: 0.5, ok: false},
		"nan":          {v: math.NaN(), ok: false},
		"inf":          {v: math.Inf(1), ok: false},
		"huge float":   {v: 1e300, ok: false},
		"string":       {v: "1", ok: false},
		"untyped nil":  {v: nil, ok: false},
		"alignment":    {v: AlignRight, ok: false},
		"border style": {v: BorderASCII, ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := toInt(tt.v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestColumnPosition(t *testing.T) {
	t.Parallel()
	assert.Equal(t, AlignLeft, columnPosition(0, 1))
	assert.Equal(t, AlignLeft, columnPosition(0, 3))
	assert.Equal(t, AlignCenter, columnPosition(1, 3))
	assert.Equal(t, AlignRight, columnPosition(2, 3))
}

func TestExtendAlignsNoop(t *testing.T) {
	t.Parallel()
	aligns := extendAligns([]HorizontalAlignment{AlignRight, AlignRight, AlignRight}, 2)
	assert.Len(t, aligns, 2)
	aligns = extendAligns([]HorizontalAlignment{AlignRight}, 3)
	assert.Equal(t, []HorizontalAlignment{AlignRight, AlignLeft, AlignLeft}, aligns)
}
