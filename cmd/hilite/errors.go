package main

import (
	"context"
	"errors"

	"github.com/isseis/go-hilite/internal/config"
	"github.com/isseis/go-hilite/internal/highlight"
	"github.com/isseis/go-hilite/internal/logging"
	"github.com/isseis/go-hilite/internal/stream"
	"go.uber.org/multierr"
)

var errInvalidArguments = errors.New("invalid arguments")

// toFatalError classifies err by the first error it combines.
func toFatalError(err error, runID string) *logging.FatalError {
	errorType, message := classify(err)
	return &logging.FatalError{
		Type:    errorType,
		Message: message,
		RunID:   runID,
		Err:     err,
	}
}

func classify(err error) (logging.ErrorType, string) {
	if errs := multierr.Errors(err); len(errs) > 1 {
		err = errs[0]
	}

	var (
		compileErr  *highlight.PatternCompileError
		conflictErr *config.ConflictingFlagsError
		writeErr    *stream.OutputWriteError
		readErr     *stream.InputReadError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return logging.ErrorTypeUserInterrupted, "interrupted"
	case errors.As(err, &compileErr), errors.Is(err, highlight.ErrNoPatterns):
		return logging.ErrorTypePatternCompile, "failed to compile patterns"
	case errors.As(err, &conflictErr):
		return logging.ErrorTypeConflictingFlags, "conflicting options"
	case errors.Is(err, config.ErrConfigParsing), errors.Is(err, config.ErrConfigFileNotFound):
		return logging.ErrorTypeConfigParsing, "failed to load config file"
	case errors.As(err, &writeErr):
		return logging.ErrorTypeOutputWrite, "failed to write output"
	case errors.As(err, &readErr):
		return logging.ErrorTypeInputRead, "failed to read input"
	case errors.Is(err, errInvalidArguments),
		errors.Is(err, config.ErrInvalidColorMode),
		errors.Is(err, highlight.ErrUnknownEngine),
		errors.Is(err, highlight.ErrUnknownColor),
		errors.Is(err, highlight.ErrEmptyPalette):
		return logging.ErrorTypeInvalidArguments, "invalid arguments"
	default:
		return logging.ErrorTypeSystemError, "unexpected error"
	}
}
