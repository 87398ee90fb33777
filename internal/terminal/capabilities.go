package terminal

import (
	"os"
	"strings"
)

// Options contains all terminal-related configuration options
type Options struct {
	// PreferenceOptions carries --color=always / --color=never
	PreferenceOptions PreferenceOptions
	// DetectorOptions selects the stream and forced interactive modes
	DetectorOptions DetectorOptions
}

// Capabilities provides a unified interface for terminal capability detection
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities implements the Capabilities interface by combining
// all the terminal detection components
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	colorDetector       ColorDetector
	userPreference      *UserPreference
}

// NewCapabilities creates a new Capabilities instance with the given options
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		colorDetector:       NewColorDetector(),
		userPreference:      NewUserPreference(options.PreferenceOptions),
	}
}

// IsInteractive returns true if the stream should be treated as interactive
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor returns true if escape sequences should be written.
// Priority order:
// 1. Command line choice (--color=always / --color=never)
// 2. CLICOLOR_FORCE=1
// 3. NO_COLOR
// 4. CLICOLOR (only applies in interactive mode)
// 5. Terminal capability auto-detection
func (c *DefaultCapabilities) SupportsColor() bool {
	// Priorities 1-3 are explicit preferences
	if c.userPreference.HasExplicitPreference() {
		return c.userPreference.SupportsColor()
	}

	// A pipe or a terminal without color never gets escape sequences
	if !c.IsInteractive() || !c.colorDetector.SupportsColor() {
		return false
	}

	// Priority 4: CLICOLOR=0 turns color off on a capable terminal
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	// Priority 5: interactive and color capable
	return true
}

// HasExplicitUserPreference returns true if the user has explicitly set
// a color preference through command line options or environment variables
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	return c.userPreference.HasExplicitPreference()
}

// isTruthy accepts "1", "true" and "yes" (case insensitive)
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
