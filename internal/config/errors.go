package config

import (
	"errors"
	"fmt"
)

// Error definitions
var (
	// ErrInvalidColorMode is returned when the color option is not auto, always or never
	ErrInvalidColorMode = errors.New("invalid color mode - valid options are: auto, always, never")

	// ErrConfigFileNotFound is returned when an explicitly requested config file does not exist
	ErrConfigFileNotFound = errors.New("config file not found")

	// ErrConfigParsing is returned when the config file is not valid TOML for the options record
	ErrConfigParsing = errors.New("failed to parse config file")
)

// ConflictingFlagsError reports two mutually exclusive options that were
// both enabled.
type ConflictingFlagsError struct {
	First  string
	Second string
}

// Error implements the error interface
func (e *ConflictingFlagsError) Error() string {
	return fmt.Sprintf("options --%s and --%s are mutually exclusive", e.First, e.Second)
}
