package highlight

import (
	"testing"

	"github.com/isseis/go-hilite/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red     = ColorOf(color.Red)
	green   = ColorOf(color.Green)
	yellow  = ColorOf(color.Yellow)
	blue    = ColorOf(color.Blue)
	magenta = ColorOf(color.Magenta)
	cyan    = ColorOf(color.Cyan)
)

func TestVaryPolicy_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		policy   VaryPolicy
		patterns int
		want     bool
	}{
		{"auto with single pattern varies", VaryAuto, 1, true},
		{"auto with several patterns is uniform", VaryAuto, 3, false},
		{"on forces variance", VaryOn, 3, true},
		{"off forces uniform", VaryOff, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Resolve(tt.patterns))
		})
	}
}

func TestAssignColors_Uniform(t *testing.T) {
	table, err := AssignColors([]int{0, 0, 0}, DefaultPalette, false)
	require.NoError(t, err)

	assert.Equal(t, []PatternColoring{{Primary: red}, {Primary: green}, {Primary: yellow}}, table)
}

func TestAssignColors_UniformIgnoresGroups(t *testing.T) {
	table, err := AssignColors([]int{2, 1}, DefaultPalette, false)
	require.NoError(t, err)

	assert.Equal(t, red, table[0].Primary)
	assert.Nil(t, table[0].Groups)
	assert.Equal(t, red, table[0].Group(2), "groups share the pattern color")
	assert.Equal(t, green, table[1].Primary)
}

func TestAssignColors_VarySharesCursor(t *testing.T) {
	table, err := AssignColors([]int{2, 0, 3}, DefaultPalette, true)
	require.NoError(t, err)

	assert.Equal(t, PatternColoring{Primary: red, Groups: []Color{red, green}}, table[0])
	assert.Equal(t, PatternColoring{Primary: yellow}, table[1])
	assert.Equal(t, PatternColoring{Primary: blue, Groups: []Color{blue, magenta, cyan}}, table[2])
}

func TestAssignColors_Wraps(t *testing.T) {
	table, err := AssignColors([]int{8}, DefaultPalette, true)
	require.NoError(t, err)

	assert.Equal(t, []Color{red, green, yellow, blue, magenta, cyan, red, green}, table[0].Groups)
}

func TestAssignColors_Deterministic(t *testing.T) {
	first, err := AssignColors([]int{1, 0, 2, 4}, DefaultPalette, true)
	require.NoError(t, err)
	second, err := AssignColors([]int{1, 0, 2, 4}, DefaultPalette, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssignColors_EmptyPalette(t *testing.T) {
	_, err := AssignColors([]int{0}, nil, false)
	assert.ErrorIs(t, err, ErrEmptyPalette)
}

func TestPatternColoring_GroupOutOfRange(t *testing.T) {
	pc := PatternColoring{Primary: cyan, Groups: []Color{red}}

	assert.Equal(t, red, pc.Group(1))
	assert.Equal(t, cyan, pc.Group(0))
	assert.Equal(t, cyan, pc.Group(2))
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette, p)

	p, err = ParsePalette([]string{"cyan", "White"})
	require.NoError(t, err)
	assert.Equal(t, Palette{cyan, ColorOf(color.White)}, p)

	_, err = ParsePalette([]string{"red", "teal"})
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "none", NoColor.String())
	assert.Equal(t, "magenta", magenta.String())
}
