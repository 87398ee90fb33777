package terminal

import (
	"os"
)

// PreferenceOptions carries the color choice made on the command line
type PreferenceOptions struct {
	ForceColor   bool // --color=always
	DisableColor bool // --color=never
}

// UserPreference resolves explicit color preferences from options and
// environment variables
type UserPreference struct {
	options PreferenceOptions
}

// NewUserPreference creates a new UserPreference instance
func NewUserPreference(options PreferenceOptions) *UserPreference {
	return &UserPreference{
		options: options,
	}
}

// SupportsColor returns the explicit preference. It is only meaningful
// when HasExplicitPreference is true.
func (p *UserPreference) SupportsColor() bool {
	// Priority 1: Command line arguments (highest priority)
	if p.options.ForceColor {
		return true
	}
	if p.options.DisableColor {
		return false
	}

	// Priority 2: CLICOLOR_FORCE=1 overrides everything below
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}

	// Priority 3: NO_COLOR (any value, even empty)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	// Priority 4: no explicit preference, CLICOLOR and terminal detection
	// are left to DefaultCapabilities
	return false
}

// HasExplicitPreference returns true if user has explicitly set a color preference
func (p *UserPreference) HasExplicitPreference() bool {
	// --color=always and --color=never are explicit preferences
	if p.options.ForceColor || p.options.DisableColor {
		return true
	}

	// CLICOLOR_FORCE=0 is not an explicit preference
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}

	// Any setting of NO_COLOR is explicit (even if empty)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}

	// CLICOLOR is NOT an explicit preference. Like other Unix tools, it is
	// ignored when output goes to a pipe.
	// See DefaultCapabilities.SupportsColor
	return false
}
