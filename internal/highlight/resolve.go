package highlight

import (
	"cmp"
	"slices"
)

// Segment is a maximal run of bytes sharing one color.
type Segment struct {
	Start int
	End   int
	Color Color
}

// Len returns the number of bytes in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Resolve flattens overlapping spans into ordered segments that cover
// [0, lineLen) exactly once. Spans are applied in ascending pattern order,
// keeping their relative order within a pattern, and every write overwrites
// the bytes it covers, so the last writer wins. An empty line yields no
// segments and a line without spans yields a single NoColor segment.
func Resolve(lineLen int, spans []Span) []Segment {
	if lineLen == 0 {
		return nil
	}
	if len(spans) == 0 {
		return []Segment{{Start: 0, End: lineLen, Color: NoColor}}
	}

	ordered := spans
	if !slices.IsSortedFunc(spans, bySpanPattern) {
		ordered = slices.Clone(spans)
		slices.SortStableFunc(ordered, bySpanPattern)
	}

	paint := make([]Color, lineLen)
	for i := range paint {
		paint[i] = NoColor
	}
	for _, s := range ordered {
		start, end := max(s.Start, 0), min(s.End, lineLen)
		for i := start; i < end; i++ {
			paint[i] = s.Color
		}
	}

	segments := make([]Segment, 0, 2*len(ordered)+1)
	runStart := 0
	for i := 1; i <= lineLen; i++ {
		if i < lineLen && paint[i] == paint[runStart] {
			continue
		}
		segments = append(segments, Segment{Start: runStart, End: i, Color: paint[runStart]})
		runStart = i
	}

	return segments
}

func bySpanPattern(a, b Span) int {
	return cmp.Compare(a.Pattern, b.Pattern)
}
