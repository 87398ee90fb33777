package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/isseis/go-hilite/internal/terminal"
)

// LoggerConfig holds all configuration for logger setup
type LoggerConfig struct {
	Level  slog.Level
	RunID  string
	Writer io.Writer // Destination for diagnostics, os.Stderr when nil
	// OmitTime drops timestamps from plain text records
	OmitTime bool
	// Terminal overrides detection of the diagnostics stream
	Terminal terminal.Options
}

// GenerateRunID returns a fresh identifier attached to every log record of
// one invocation.
func GenerateRunID() string {
	return uuid.NewString()
}

// Setup builds the diagnostics logger and installs it as the slog default.
// Records go to the interactive handler when the writer is a terminal and to
// a plain text handler otherwise.
//
// It must be called once during startup, before any logging occurs.
func Setup(config LoggerConfig) (*slog.Logger, error) {
	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	termOpts := config.Terminal
	if termOpts.DetectorOptions.Stream == nil {
		termOpts.DetectorOptions.Stream = os.Stderr
	}
	capabilities := terminal.NewCapabilities(termOpts)

	interactiveHandler, err := NewInteractiveHandler(InteractiveHandlerOptions{
		Level:        config.Level,
		Writer:       writer,
		Capabilities: capabilities,
		Formatter:    NewDefaultMessageFormatter(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create interactive handler: %w", err)
	}

	textHandler, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		TextHandlerOptions: &slog.HandlerOptions{
			Level: config.Level,
		},
		Writer:       writer,
		Capabilities: capabilities,
		OmitTime:     config.OmitTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create conditional text handler: %w", err)
	}

	handler := NewMultiHandler(interactiveHandler, textHandler).
		WithAttrs([]slog.Attr{slog.String("run_id", config.RunID)})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
