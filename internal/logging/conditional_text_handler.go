package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/isseis/go-hilite/internal/terminal"
)

// Static errors for ConditionalTextHandler validation
var (
	ErrConditionalTextHandlerCapabilitiesRequired = errors.New("ConditionalTextHandler: Capabilities is required")
	ErrConditionalTextHandlerWriterRequired       = errors.New("ConditionalTextHandler: Writer is required")
)

// ConditionalTextHandler wraps a slog.TextHandler and only operates when
// the diagnostics stream is not interactive. It pairs with the interactive
// handler so exactly one of them writes each record.
type ConditionalTextHandler struct {
	capabilities terminal.Capabilities
	textHandler  slog.Handler
}

// ConditionalTextHandlerOptions configures the ConditionalTextHandler.
type ConditionalTextHandlerOptions struct {
	// Capabilities decides whether the stream is interactive (required)
	Capabilities terminal.Capabilities
	// TextHandlerOptions is passed to slog.NewTextHandler, may be nil
	TextHandlerOptions *slog.HandlerOptions
	// Writer receives the text records (required)
	Writer io.Writer
	// OmitTime drops the time attribute so output is stable across runs
	OmitTime bool
}

// NewConditionalTextHandler creates a new ConditionalTextHandler.
func NewConditionalTextHandler(opts ConditionalTextHandlerOptions) (*ConditionalTextHandler, error) {
	if opts.Capabilities == nil {
		return nil, ErrConditionalTextHandlerCapabilitiesRequired
	}
	if opts.Writer == nil {
		return nil, ErrConditionalTextHandlerWriterRequired
	}

	handlerOpts := opts.TextHandlerOptions
	if opts.OmitTime {
		handlerOpts = withoutTime(handlerOpts)
	}

	return &ConditionalTextHandler{
		capabilities: opts.Capabilities,
		textHandler:  slog.NewTextHandler(opts.Writer, handlerOpts),
	}, nil
}

// withoutTime returns a copy of opts whose ReplaceAttr removes the top-level
// time attribute before any existing ReplaceAttr runs.
func withoutTime(opts *slog.HandlerOptions) *slog.HandlerOptions {
	var out slog.HandlerOptions
	if opts != nil {
		out = *opts
	}
	next := out.ReplaceAttr
	out.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if next != nil {
			return next(groups, a)
		}
		return a
	}
	return &out
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConditionalTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Only enable if we're NOT in an interactive environment
	if h.capabilities.IsInteractive() {
		return false
	}
	return h.textHandler.Enabled(ctx, level)
}

// Handle delegates to the text handler outside interactive environments.
func (h *ConditionalTextHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.capabilities.IsInteractive() {
		return nil
	}
	// Delegate to the underlying text handler
	return h.textHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with additional attributes.
func (h *ConditionalTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConditionalTextHandler{
		capabilities: h.capabilities,
		textHandler:  h.textHandler.WithAttrs(attrs),
	}
}

// WithGroup returns a new handler with an additional group.
func (h *ConditionalTextHandler) WithGroup(name string) slog.Handler {
	return &ConditionalTextHandler{
		capabilities: h.capabilities,
		textHandler:  h.textHandler.WithGroup(name),
	}
}
