package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, sources []string, opts Options) *Highlighter {
	t.Helper()
	h, err := New(sources, opts)
	require.NoError(t, err)
	return h
}

func TestHighlighter_GroupIsolation(t *testing.T) {
	h := mustNew(t, []string{"a(b)c"}, Options{})

	segments, matched := h.Segments("abc")
	assert.True(t, matched)
	assert.Equal(t, []Segment{{0, 1, NoColor}, {1, 2, red}, {2, 3, NoColor}}, segments)

	assert.Equal(t, Result{Text: "a\033[91;41mb\033[0mc", Matched: true}, h.Highlight("abc"))
}

func TestHighlighter_NamedGroupColorsMatchAcrossEngines(t *testing.T) {
	for _, engine := range []Engine{EngineRE2, EnginePCRE} {
		t.Run(string(engine), func(t *testing.T) {
			h := mustNew(t, []string{`(?<n>a)(b)`}, Options{Compile: CompileOptions{Engine: engine}})

			segments, _ := h.Segments("ab")
			assert.Equal(t, []Segment{{0, 1, red}, {1, 2, green}}, segments)
		})
	}
}

func TestHighlighter_FullMatchOverride(t *testing.T) {
	h := mustNew(t, []string{"a(b)c"}, Options{FullMatch: true})

	segments, _ := h.Segments("abc")
	assert.Equal(t, []Segment{{0, 3, h.Colorings()[0].Primary}}, segments)
	assert.Equal(t, "\033[91;41mabc\033[0m", h.Highlight("abc").Text)
}

func TestHighlighter_FullMatchConsumesOneSlotPerPattern(t *testing.T) {
	h := mustNew(t, []string{"(a)(b)", "c"}, Options{FullMatch: true, Vary: VaryOn})

	assert.Equal(t, []PatternColoring{{Primary: red}, {Primary: green}}, h.Colorings())
}

func TestHighlighter_LastPatternWins(t *testing.T) {
	h := mustNew(t, []string{"b", "abc"}, Options{})

	segments, _ := h.Segments("xabcx")
	assert.Equal(t, []Segment{{0, 1, NoColor}, {1, 4, green}, {4, 5, NoColor}}, segments)

	reversed := mustNew(t, []string{"abc", "b"}, Options{})
	segments, _ = reversed.Segments("xabcx")
	assert.Equal(t, []Segment{{0, 1, NoColor}, {1, 2, red}, {2, 3, green}, {3, 4, red}, {4, 5, NoColor}}, segments)
}

func TestHighlighter_PaletteByPatternIndex(t *testing.T) {
	h := mustNew(t, []string{"x", "y", "z"}, Options{})

	for _, line := range []string{"y", "xyz", "zzz y", "none here"} {
		assert.Equal(t, DefaultPalette[1], h.Colorings()[1].Primary, "line %q", line)
		segments, _ := h.Segments(line)
		for _, s := range segments {
			if line[s.Start:s.End] == "y" {
				assert.Equal(t, DefaultPalette[1], s.Color)
			}
		}
	}
}

func TestHighlighter_VaryingGroups(t *testing.T) {
	h := mustNew(t, []string{`(\d+)-(\d+)`}, Options{})

	segments, _ := h.Segments("10-20")
	assert.Equal(t, []Segment{{0, 2, red}, {2, 3, NoColor}, {3, 5, green}}, segments)
}

func TestHighlighter_UniformGroupsWithSeveralPatterns(t *testing.T) {
	h := mustNew(t, []string{`(\d+)-(\d+)`, "zz"}, Options{})

	segments, _ := h.Segments("10-20")
	assert.Equal(t, []Segment{{0, 2, red}, {2, 3, NoColor}, {3, 5, red}}, segments)
}

func TestHighlighter_VaryOffWithSinglePattern(t *testing.T) {
	h := mustNew(t, []string{`(\d+)-(\d+)`}, Options{Vary: VaryOff})

	segments, _ := h.Segments("10-20")
	assert.Equal(t, []Segment{{0, 2, red}, {2, 3, NoColor}, {3, 5, red}}, segments)
}

func TestHighlighter_NestedGroupsHigherIndexWins(t *testing.T) {
	h := mustNew(t, []string{"(a(b))"}, Options{})

	segments, _ := h.Segments("ab")
	assert.Equal(t, []Segment{{0, 1, red}, {1, 2, green}}, segments)
}

func TestHighlighter_NoParticipatingGroupFallsBackToWholeMatch(t *testing.T) {
	h := mustNew(t, []string{"x(y)?"}, Options{})

	segments, matched := h.Segments("x")
	assert.True(t, matched)
	assert.Equal(t, []Segment{{0, 1, red}}, segments)
}

func TestHighlighter_NoMatchRendersUnchanged(t *testing.T) {
	h := mustNew(t, []string{"foo", "b(a)r"}, Options{})

	line := "nothing to see"
	assert.Equal(t, Result{Text: line}, h.Highlight(line))
	assert.Equal(t, Result{Text: ""}, h.Highlight(""))
}

func TestHighlighter_EmptyMatchCountsAsMatch(t *testing.T) {
	h := mustNew(t, []string{"^"}, Options{})

	assert.Equal(t, Result{Text: "abc", Matched: true}, h.Highlight("abc"))
	assert.Equal(t, Result{Text: "", Matched: true}, h.Highlight(""))
}

func TestHighlighter_Deterministic(t *testing.T) {
	sources := []string{"o", "wor(l)d", "(h)(e)"}
	line := "hello world, hello again"

	first := mustNew(t, sources, Options{Vary: VaryOn}).Highlight(line)
	second := mustNew(t, sources, Options{Vary: VaryOn}).Highlight(line)

	assert.Equal(t, first, second)
}

func TestHighlighter_Plain(t *testing.T) {
	h := mustNew(t, []string{"at"}, Options{Plain: true})

	assert.Equal(t, Result{Text: "cat", Matched: true}, h.Highlight("cat"))
	assert.Equal(t, Result{Text: "dog"}, h.Highlight("dog"))
}

func TestHighlighter_CustomPaletteAndMode(t *testing.T) {
	h := mustNew(t, []string{"a", "b"}, Options{Palette: Palette{cyan}, Mode: ModeBackground})

	assert.Equal(t, "\033[46mab\033[0m", h.Highlight("ab").Text,
		"a single-color palette wraps and adjacent runs of one color merge")
}

func TestHighlighter_CompileErrorIsReturned(t *testing.T) {
	_, err := New([]string{"ok", "("}, Options{})

	var compileErr *PatternCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, 1, compileErr.Index)
}

func TestHighlighter_Patterns(t *testing.T) {
	h := mustNew(t, []string{"one", "two"}, Options{Compile: CompileOptions{IgnoreCase: true}})

	require.Len(t, h.Patterns(), 2)
	assert.Equal(t, "two", h.Patterns()[1].Source)
	assert.True(t, h.Highlight("TWO").Matched)
}
