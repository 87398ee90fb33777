package logging

import (
	"log/slog"
	"strings"
	"time"

	"github.com/isseis/go-hilite/internal/color"
)

// MessageFormatter formats log records for interactive display.
type MessageFormatter interface {
	FormatRecordWithColor(record slog.Record, useColor bool) string
}

// DefaultMessageFormatter prints "LEVEL message key=value ..." with an
// optionally colored level prefix.
type DefaultMessageFormatter struct{}

// NewDefaultMessageFormatter creates a new DefaultMessageFormatter.
func NewDefaultMessageFormatter() *DefaultMessageFormatter {
	return &DefaultMessageFormatter{}
}

// skipKeys are attributes that only matter to machine readers.
var skipKeys = map[string]struct{}{
	"run_id": {},
}

// FormatRecordWithColor formats a log record with optional color support.
func (f *DefaultMessageFormatter) FormatRecordWithColor(record slog.Record, useColor bool) string {
	var sb strings.Builder

	sb.WriteString(f.formatLevel(record.Level, useColor))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	record.Attrs(func(attr slog.Attr) bool {
		if _, skip := skipKeys[attr.Key]; skip {
			return true
		}
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		sb.WriteString(f.formatValue(attr.Value))
		return true
	})

	return sb.String()
}

// formatLevel formats the log level with visual distinction
func (f *DefaultMessageFormatter) formatLevel(level slog.Level, useColor bool) string {
	if useColor {
		switch level {
		case slog.LevelDebug:
			return color.Gray("* DEBUG")
		case slog.LevelInfo:
			return color.GreenText("+ INFO ")
		case slog.LevelWarn:
			return color.YellowText("! WARN ")
		case slog.LevelError:
			return color.RedText("X ERROR")
		default:
			return color.Gray("> " + level.String())
		}
	}

	switch level {
	case slog.LevelDebug:
		return "[DEBUG]"
	case slog.LevelInfo:
		return "[INFO ]"
	case slog.LevelWarn:
		return "[WARN ]"
	case slog.LevelError:
		return "[ERROR]"
	default:
		return "[" + strings.ToUpper(level.String()) + "]"
	}
}

// formatValue formats a slog.Value for display
func (f *DefaultMessageFormatter) formatValue(value slog.Value) string {
	switch value.Kind() {
	case slog.KindString:
		s := value.String()
		if strings.ContainsAny(s, " \t\"=") {
			return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
		}
		return s
	case slog.KindTime:
		return value.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return value.Duration().String()
	case slog.KindGroup:
		attrs := value.Group()
		if len(attrs) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			parts = append(parts, attr.Key+"="+f.formatValue(attr.Value))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return value.String()
	}
}
