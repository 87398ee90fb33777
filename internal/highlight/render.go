package highlight

import (
	"strings"

	"github.com/isseis/go-hilite/internal/color"
)

// Mode selects how a colored span is styled.
type Mode int

const (
	// ModeBoth sets a bright foreground on a background of the same color
	ModeBoth Mode = iota
	// ModeForeground only changes the foreground color
	ModeForeground
	// ModeBackground only changes the background color
	ModeBackground
)

func (m Mode) String() string {
	switch m {
	case ModeForeground:
		return "foreground"
	case ModeBackground:
		return "background"
	default:
		return "both"
	}
}

// Renderer turns segments back into text with escape sequences around every
// colored segment.
type Renderer struct {
	mode   Mode
	starts [color.White + 1]string
}

// NewRenderer precomputes the start sequence of every base color for mode.
func NewRenderer(mode Mode) *Renderer {
	r := &Renderer{mode: mode}
	for b := color.Black; b <= color.White; b++ {
		switch mode {
		case ModeForeground:
			r.starts[b] = color.SGR(b.Foreground())
		case ModeBackground:
			r.starts[b] = color.SGR(b.Background())
		default:
			r.starts[b] = color.SGR(b.BrightForeground(), b.Background())
		}
	}
	return r
}

// Mode returns the styling mode of the renderer.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Start returns the escape sequence opening a span of color c.
func (r *Renderer) Start(c Color) string {
	return r.starts[c.Base()]
}

// Render writes line with every colored segment bracketed by its start
// sequence and a reset. Segments must cover line in order.
func (r *Renderer) Render(line string, segments []Segment) string {
	if len(segments) == 1 && segments[0].Color == NoColor {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line) + len(segments)*(len(color.Reset)+len(r.starts[0])))
	for _, s := range segments {
		if s.Color == NoColor {
			sb.WriteString(line[s.Start:s.End])
			continue
		}
		sb.WriteString(r.starts[s.Color.Base()])
		sb.WriteString(line[s.Start:s.End])
		sb.WriteString(color.Reset)
	}
	return sb.String()
}
