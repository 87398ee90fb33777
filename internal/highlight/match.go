package highlight

// Span is a byte range of a line claimed by one pattern with one color.
type Span struct {
	Start   int
	End     int
	Color   Color
	Pattern int
}

// matchLine runs every pattern against line in index order and appends the
// resulting spans to dst in discovery order: pattern index, then match
// position, then group index. matched reports whether any pattern matched,
// including empty matches.
func matchLine(dst []Span, line string, patterns []*Pattern, table []PatternColoring, fullMatch bool) (spans []Span, matched bool) {
	for pi, p := range patterns {
		coloring := table[pi]
		useGroups := !fullMatch && p.NumGroups() > 0

		for _, loc := range p.FindAllIndex(line) {
			matched = true

			if useGroups && appendGroupSpans(&dst, loc, pi, coloring) {
				continue
			}

			dst = append(dst, Span{Start: loc[0], End: loc[1], Color: coloring.Primary, Pattern: pi})
		}
	}

	return dst, matched
}

// appendGroupSpans appends one span per participating group and reports
// whether any group participated.
func appendGroupSpans(dst *[]Span, loc []int, pattern int, coloring PatternColoring) bool {
	participated := false
	for g := 1; 2*g+1 < len(loc); g++ {
		start, end := loc[2*g], loc[2*g+1]
		if start < 0 {
			continue
		}
		participated = true
		*dst = append(*dst, Span{Start: start, End: end, Color: coloring.Group(g), Pattern: pattern})
	}
	return participated
}
