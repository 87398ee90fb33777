package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/isseis/go-hilite/internal/terminal"
)

// Static errors for InteractiveHandler validation
var (
	ErrInteractiveHandlerWriterRequired       = errors.New("InteractiveHandler: Writer is required")
	ErrInteractiveHandlerCapabilitiesRequired = errors.New("InteractiveHandler: Capabilities is required")
	ErrInteractiveHandlerFormatterRequired    = errors.New("InteractiveHandler: Formatter is required")
)

// InteractiveHandler writes short, optionally colored records for a human
// watching the terminal.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	formatter    MessageFormatter
	writer       io.Writer
	level        slog.Level
	attrs        []slog.Attr
	groups       []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level
	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer
	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities
	// Formatter handles message formatting and coloring
	Formatter MessageFormatter
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrInteractiveHandlerCapabilitiesRequired
	}
	if opts.Formatter == nil {
		return nil, ErrInteractiveHandlerFormatterRequired
	}

	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		formatter:    opts.Formatter,
		writer:       opts.Writer,
		level:        opts.Level,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.capabilities.IsInteractive() && level >= h.level
}

// Handle formats the record and writes it as one line.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.capabilities.IsInteractive() {
		return nil
	}

	record := r.Clone()

	attrs := h.attrs
	if len(h.groups) > 0 {
		prefix := strings.Join(h.groups, ".") + "."
		prefixed := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			prefixed[i] = slog.Attr{Key: prefix + attr.Key, Value: attr.Value}
		}
		attrs = prefixed
	}
	record.AddAttrs(attrs...)

	message := h.formatter.FormatRecordWithColor(record, h.capabilities.SupportsColor())
	_, err := io.WriteString(h.writer, message+"\n")
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	clone := *h
	clone.groups = newGroups
	return &clone
}
