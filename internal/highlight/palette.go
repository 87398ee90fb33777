package highlight

import (
	"fmt"

	"github.com/isseis/go-hilite/internal/color"
)

// Color is a palette color, or NoColor for bytes that stay unstyled.
type Color int

// NoColor marks bytes no match covers.
const NoColor Color = -1

// ColorOf converts an ANSI base color into a palette Color.
func ColorOf(b color.Base) Color {
	return Color(b)
}

// Base returns the ANSI base color. It must not be called on NoColor.
func (c Color) Base() color.Base {
	return color.Base(c)
}

func (c Color) String() string {
	if c == NoColor {
		return "none"
	}
	return c.Base().String()
}

// Palette is the ordered, cyclic set of colors handed out to patterns.
type Palette []Color

// DefaultPalette leaves out black and white, which disappear on common
// terminal themes.
var DefaultPalette = Palette{
	ColorOf(color.Red),
	ColorOf(color.Green),
	ColorOf(color.Yellow),
	ColorOf(color.Blue),
	ColorOf(color.Magenta),
	ColorOf(color.Cyan),
}

// ParsePalette builds a palette from color names. An empty list yields the
// default palette.
func ParsePalette(names []string) (Palette, error) {
	if len(names) == 0 {
		return DefaultPalette, nil
	}

	p := make(Palette, 0, len(names))
	for _, name := range names {
		b, ok := color.ParseBase(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		p = append(p, ColorOf(b))
	}
	return p, nil
}

// VaryPolicy decides whether capturing groups of a pattern get distinct colors.
type VaryPolicy int

const (
	// VaryAuto varies group colors only when a single pattern is given
	VaryAuto VaryPolicy = iota
	// VaryOn always gives each group its own color
	VaryOn
	// VaryOff colors all groups of a pattern with the pattern's color
	VaryOff
)

// Resolve turns the policy into a decision for a run with patternCount patterns.
func (v VaryPolicy) Resolve(patternCount int) bool {
	switch v {
	case VaryOn:
		return true
	case VaryOff:
		return false
	default:
		return patternCount == 1
	}
}

// PatternColoring holds the colors resolved for one pattern.
type PatternColoring struct {
	// Primary colors whole-match spans.
	Primary Color
	// Groups holds one color per capturing group (index 0 is group 1). It is
	// nil when the pattern's groups share Primary.
	Groups []Color
}

// Group returns the color for capturing group n (1-based).
func (pc PatternColoring) Group(n int) Color {
	if n < 1 || n > len(pc.Groups) {
		return pc.Primary
	}
	return pc.Groups[n-1]
}

// AssignColors walks a single palette cursor across all patterns in order.
// groupCounts[i] is the number of capturing groups of pattern i. A uniform
// pattern consumes one slot; a varying pattern consumes one slot per group
// and takes its first group's color as primary. The result depends only on
// its arguments.
func AssignColors(groupCounts []int, palette Palette, vary bool) ([]PatternColoring, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	cursor := 0
	next := func() Color {
		c := palette[cursor%len(palette)]
		cursor++
		return c
	}

	table := make([]PatternColoring, len(groupCounts))
	for i, groups := range groupCounts {
		if !vary || groups == 0 {
			table[i] = PatternColoring{Primary: next()}
			continue
		}

		colors := make([]Color, groups)
		for g := range colors {
			colors[g] = next()
		}
		table[i] = PatternColoring{Primary: colors[0], Groups: colors}
	}

	return table, nil
}
