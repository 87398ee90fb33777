package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors. Declared at package scope so SupportsColor does not
// rebuild it for every check.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
	"alacritty",
	"kitty",
	"foot",
	"wezterm",
}

// ColorDetector interface defines methods for detecting color support
type ColorDetector interface {
	SupportsColor() bool
}

// DefaultColorDetector decides color support from the COLORTERM and TERM
// environment variables
type DefaultColorDetector struct{}

// NewColorDetector creates a new color detector
func NewColorDetector() ColorDetector {
	return &DefaultColorDetector{}
}

// SupportsColor returns true if the terminal supports basic color output.
// Only the eight base colors are ever written, so any terminal announcing
// more than that qualifies as well.
func (d *DefaultColorDetector) SupportsColor() bool {
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))

	// Terminals that definitely don't support color, whatever COLORTERM says
	if term == "dumb" {
		return false
	}

	// COLORTERM is set by terminals with 256 or true color support
	if os.Getenv("COLORTERM") != "" {
		return true
	}

	if term == "" {
		return false
	}

	// Exact matches or prefixes such as "xterm-256color"
	for _, colorTerm := range colorTerminals {
		if term == colorTerm || strings.HasPrefix(term, colorTerm+"-") {
			return true
		}
	}

	// Any "<name>-color" or "<name>-256color" variant advertises color
	if i := strings.LastIndexByte(term, '-'); i >= 0 && isColorSuffix(term[i+1:]) {
		return true
	}

	// Unknown terminals get no color
	return false
}

// isColorSuffix matches "color", "16color", "256color" and the like
func isColorSuffix(s string) bool {
	return strings.TrimLeft(s, "0123456789") == "color"
}
