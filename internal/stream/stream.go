// Package stream drives the line loop: it reads lines from an input stream,
// highlights each one and writes the result, one line at a time.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/isseis/go-hilite/internal/highlight"
)

// LineHighlighter highlights a single line.
type LineHighlighter interface {
	Highlight(line string) highlight.Result
}

// Options controls which lines are written and when output is flushed.
type Options struct {
	// OnlyMatchingLines drops lines no pattern matched.
	OnlyMatchingLines bool
	// LineBuffered flushes after every written line.
	LineBuffered bool
}

// Stats summarizes a run.
type Stats struct {
	Lines   int
	Matched int
	Written int
}

// Run highlights every line of r onto w until r is exhausted, a write
// fails or ctx is canceled. Lines have no length limit. A trailing "\n" or
// "\r\n" is stripped and every written line ends with "\n", including a
// final line that had no newline in the input.
func Run(ctx context.Context, r io.Reader, w io.Writer, h LineHighlighter, opts Options) (Stats, error) {
	var stats Stats

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		if err := ctx.Err(); err != nil {
			return stats, flushThen(bw, stats, err)
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, flushThen(bw, stats, &InputReadError{Line: stats.Lines + 1, Err: readErr})
		}
		if line == "" && readErr != nil {
			break
		}

		stats.Lines++
		res := h.Highlight(trimEOL(line))
		if res.Matched {
			stats.Matched++
		}

		if !opts.OnlyMatchingLines || res.Matched {
			if err := writeLine(w, bw, res.Text, opts.LineBuffered); err != nil {
				return stats, &OutputWriteError{Line: stats.Lines, Err: err}
			}
			stats.Written++
		}

		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, &OutputWriteError{Line: stats.Lines, Err: err}
	}

	slog.Debug("Input exhausted",
		"lines", stats.Lines,
		"matched", stats.Matched,
		"written", stats.Written)

	return stats, nil
}

func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r")
}

// writeLine never splits a line across writes to w. A line that does not
// fit the free buffer space first flushes the completed lines before it,
// and a line larger than the whole buffer goes to w in one Write.
func writeLine(w io.Writer, bw *bufio.Writer, text string, flush bool) error {
	n := len(text) + 1
	if n > bw.Available() && bw.Buffered() > 0 {
		if err := bw.Flush(); err != nil {
			return err
		}
	}

	if n > bw.Available() {
		buf := make([]byte, 0, n)
		buf = append(buf, text...)
		buf = append(buf, '\n')
		_, err := w.Write(buf)
		return err
	}

	if _, err := bw.WriteString(text); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if flush {
		return bw.Flush()
	}
	return nil
}

// flushThen flushes already written lines before returning cause.
func flushThen(bw *bufio.Writer, stats Stats, cause error) error {
	if err := bw.Flush(); err != nil {
		return &OutputWriteError{Line: stats.Lines, Err: err}
	}
	return cause
}
