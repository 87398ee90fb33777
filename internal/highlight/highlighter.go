// Package highlight colors the spans of a line matched by an ordered list of
// patterns. Patterns are compiled and assigned colors once; every line then
// goes through the same steps: each pattern is matched against the line,
// overlapping spans are resolved into non-overlapping segments (the pattern
// with the highest index wins a byte), and the segments are rendered with
// ANSI escape sequences.
//
// A Highlighter holds only immutable data after New returns and is safe for
// concurrent use.
package highlight

// Options configures a Highlighter.
type Options struct {
	Compile CompileOptions

	// Palette defaults to DefaultPalette when empty.
	Palette Palette
	Vary    VaryPolicy

	// FullMatch ignores capturing groups for coloring purposes.
	FullMatch bool
	Mode      Mode

	// Plain disables escape sequences. Lines are still matched so callers
	// can filter on Result.Matched.
	Plain bool
}

// Result is the outcome of highlighting one line.
type Result struct {
	Text    string
	Matched bool
}

// Highlighter applies a fixed set of patterns to lines.
type Highlighter struct {
	patterns  []*Pattern
	table     []PatternColoring
	renderer  *Renderer
	fullMatch bool
	plain     bool
}

// New compiles sources and resolves the color of every pattern and group.
func New(sources []string, opts Options) (*Highlighter, error) {
	patterns, err := Compile(sources, opts.Compile)
	if err != nil {
		return nil, err
	}

	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	groupCounts := make([]int, len(patterns))
	if !opts.FullMatch {
		for i, p := range patterns {
			groupCounts[i] = p.NumGroups()
		}
	}

	table, err := AssignColors(groupCounts, palette, opts.Vary.Resolve(len(patterns)))
	if err != nil {
		return nil, err
	}

	return &Highlighter{
		patterns:  patterns,
		table:     table,
		renderer:  NewRenderer(opts.Mode),
		fullMatch: opts.FullMatch,
		plain:     opts.Plain,
	}, nil
}

// Patterns returns the compiled patterns in precedence order.
func (h *Highlighter) Patterns() []*Pattern {
	return h.patterns
}

// Colorings returns the color table, index aligned with Patterns.
func (h *Highlighter) Colorings() []PatternColoring {
	return h.table
}

// Segments returns the resolved coloring plan for line and whether any
// pattern matched it.
func (h *Highlighter) Segments(line string) ([]Segment, bool) {
	spans, matched := matchLine(nil, line, h.patterns, h.table, h.fullMatch)
	return Resolve(len(line), spans), matched
}

// Highlight renders line with its matched spans colored.
func (h *Highlighter) Highlight(line string) Result {
	if h.plain {
		return Result{Text: line, Matched: h.matches(line)}
	}

	segments, matched := h.Segments(line)
	if !matched {
		return Result{Text: line}
	}
	return Result{Text: h.renderer.Render(line, segments), Matched: true}
}

func (h *Highlighter) matches(line string) bool {
	for _, p := range h.patterns {
		if p.FindAllIndex(line) != nil {
			return true
		}
	}
	return false
}
