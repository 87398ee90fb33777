// Package color provides helpers for building ANSI SGR escape sequences and
// coloring terminal text with them. The highlighter uses it to render match
// spans and the logging package uses it for level prefixes.
//
//nolint:revive // package name conflicts with standard library
package color

import (
	"strconv"
	"strings"
)

// Reset clears every SGR attribute.
const Reset = "\033[0m"

// SGR parameter bases for the eight base colors.
const (
	foregroundBase       = 30
	backgroundBase       = 40
	brightForegroundBase = 90
)

// Base is one of the eight ANSI base colors, numbered as in the SGR
// palette (0 = black ... 7 = white).
type Base int

// The ANSI base colors.
const (
	Black Base = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var baseNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// String returns the lower-case color name.
func (b Base) String() string {
	if !b.Valid() {
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
	return baseNames[b]
}

// Valid reports whether b is one of the eight base colors.
func (b Base) Valid() bool {
	return b >= Black && b <= White
}

// ParseBase looks up a base color by name, ignoring case and surrounding
// whitespace.
func ParseBase(name string) (Base, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range baseNames {
		if n == name {
			return Base(i), true
		}
	}
	return 0, false
}

// Foreground returns the SGR parameter selecting b as foreground color.
func (b Base) Foreground() int { return foregroundBase + int(b) }

// BrightForeground returns the SGR parameter selecting the bright variant of b
// as foreground color.
func (b Base) BrightForeground() int { return brightForegroundBase + int(b) }

// Background returns the SGR parameter selecting b as background color.
func (b Base) Background() int { return backgroundBase + int(b) }

// SGR builds a single escape sequence carrying all the given parameters,
// e.g. SGR(94, 44) == "\033[94;44m".
func SGR(params ...int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte('m')
	return sb.String()
}

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + Reset
	}
}

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(SGR(Black.BrightForeground()))

	// GreenText colors text in green
	GreenText = NewColor(SGR(Green.Foreground()))

	// YellowText colors text in yellow
	YellowText = NewColor(SGR(Yellow.Foreground()))

	// RedText colors text in red
	RedText = NewColor(SGR(Red.Foreground()))

	// CyanText colors text in cyan
	CyanText = NewColor(SGR(Cyan.Foreground()))
)
