package highlight

import (
	"errors"
	"fmt"
)

// Error definitions
var (
	// ErrNoPatterns is returned when no pattern was supplied
	ErrNoPatterns = errors.New("at least one pattern is required")

	// ErrUnknownEngine is returned when the regular expression engine name is not recognized
	ErrUnknownEngine = errors.New("unknown regular expression engine - valid options are: re2, pcre")

	// ErrEmptyPalette is returned when a palette without any color is used for assignment
	ErrEmptyPalette = errors.New("palette must contain at least one color")

	// ErrUnknownColor is returned when a palette entry does not name a base color
	ErrUnknownColor = errors.New("unknown color name")
)

// PatternCompileError reports a pattern that is not a valid expression.
type PatternCompileError struct {
	Index   int
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid pattern #%d %q: %v", e.Index+1, e.Pattern, e.Err)
}

// Unwrap returns the underlying syntax error
func (e *PatternCompileError) Unwrap() error {
	return e.Err
}
