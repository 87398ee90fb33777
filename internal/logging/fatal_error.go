package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/multierr"
)

// ErrorType classifies errors that end the program
type ErrorType string

const (
	// ErrorTypePatternCompile represents patterns the engine rejected
	ErrorTypePatternCompile ErrorType = "pattern_compile_failed"
	// ErrorTypeConflictingFlags represents mutually exclusive options used together
	ErrorTypeConflictingFlags ErrorType = "conflicting_flags"
	// ErrorTypeInvalidArguments represents unusable command line arguments
	ErrorTypeInvalidArguments ErrorType = "invalid_arguments"
	// ErrorTypeConfigParsing represents configuration file failures
	ErrorTypeConfigParsing ErrorType = "config_parsing_failed"
	// ErrorTypeOutputWrite represents failures writing standard output
	ErrorTypeOutputWrite ErrorType = "output_write_failed"
	// ErrorTypeInputRead represents failures reading standard input
	ErrorTypeInputRead ErrorType = "input_read_failed"
	// ErrorTypeUserInterrupted represents user interruption
	ErrorTypeUserInterrupted ErrorType = "user_interrupted"
	// ErrorTypeSystemError represents anything else
	ErrorTypeSystemError ErrorType = "system_error"
)

// Exit codes
const (
	ExitFailure     = 1
	ExitInterrupted = 130
)

// FatalError is an error that terminates the program
type FatalError struct {
	Type    ErrorType
	Message string
	RunID   string
	Err     error
}

// Error implements the error interface
func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (run_id: %s)", e.Type, e.Message, e.Err, e.RunID)
	}
	return fmt.Sprintf("%s: %s (run_id: %s)", e.Type, e.Message, e.RunID)
}

// Unwrap implements error wrapping for errors.Unwrap
func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for the error
func (e *FatalError) ExitCode() int {
	if e.Type == ErrorTypeUserInterrupted {
		return ExitInterrupted
	}
	return ExitFailure
}

// HandleFatalError writes a human readable report of e to w in a single
// write and logs it. Every error joined into e.Err gets its own line. The
// run id is only printed when debug is set.
func HandleFatalError(w io.Writer, e *FatalError, debug bool) int {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", e.Type)
	fmt.Fprintf(&sb, "  Details: %s\n", e.Message)

	causes := multierr.Errors(e.Err)
	if len(causes) == 1 {
		fmt.Fprintf(&sb, "  Caused by: %v\n", causes[0])
	} else if len(causes) > 1 {
		sb.WriteString("  Caused by:\n")
		for _, cause := range causes {
			fmt.Fprintf(&sb, "    - %v\n", cause)
		}
	}

	if debug && e.RunID != "" {
		fmt.Fprintf(&sb, "  Run ID: %s\n", e.RunID)
	}
	_, _ = io.WriteString(w, sb.String())

	slog.Debug("Fatal error occurred",
		"error_type", string(e.Type),
		"error_message", e.Message,
		"causes", len(causes),
		"error", e.Err,
		"run_id", e.RunID,
	)

	return e.ExitCode()
}
