// Package terminal decides whether the output stream is an interactive,
// color capable terminal. It combines stream detection, CI detection, the
// TERM variable and the NO_COLOR / CLICOLOR / CLICOLOR_FORCE conventions.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// isTerminal is replaced in tests.
var isTerminal = term.IsTerminal

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // Force interactive mode regardless of environment
	ForceNonInteractive bool // Force non-interactive mode regardless of environment

	// Stream is the file whose terminal status is checked. Nil means os.Stdout.
	Stream *os.File
}

// InteractiveDetector interface defines methods for detecting interactive terminal capabilities
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DefaultInteractiveDetector implements InteractiveDetector
type DefaultInteractiveDetector struct {
	options DetectorOptions
}

// NewInteractiveDetector creates a new interactive detector with the given options
func NewInteractiveDetector(options DetectorOptions) InteractiveDetector {
	if options.Stream == nil {
		options.Stream = os.Stdout
	}
	return &DefaultInteractiveDetector{
		options: options,
	}
}

// IsInteractive returns true if the current environment is interactive
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	// Priority 1: Command line options (highest priority)
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	// Priority 2: CI environment detection
	if d.IsCIEnvironment() {
		return false
	}

	// Priority 3: Terminal detection
	return d.IsTerminal()
}

// IsTerminal checks if the configured stream is connected to a terminal.
// Highlighted data goes to stdout and diagnostics to stderr, and either may
// be redirected on its own, so only the stream in question is checked.
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	return isTerminal(int(d.options.Stream.Fd()))
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false only rules out the generic indicator; a provider
		// specific variable still marks a CI run
		if envVar == "CI" && !isCITruthy(value) {
			continue
		}
		// For other CI variables, presence indicates CI environment
		return true
	}

	return false
}

// isCITruthy treats CI=false, CI=0 and CI=no as not running in CI
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
