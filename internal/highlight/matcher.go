package highlight

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Matcher finds every non-overlapping match of a compiled pattern in a line.
//
// FindAllIndex follows the layout of regexp.FindAllStringSubmatchIndex: one
// slice per match holding byte offset pairs for the whole match followed by
// each capturing group, with -1 for groups that did not participate.
type Matcher interface {
	FindAllIndex(line string) [][]int
	NumGroups() int
}

// re2Matcher runs patterns on the standard library RE2 engine.
type re2Matcher struct {
	re *regexp.Regexp
}

func (m *re2Matcher) FindAllIndex(line string) [][]int {
	return m.re.FindAllStringSubmatchIndex(line, -1)
}

func (m *re2Matcher) NumGroups() int {
	return m.re.NumSubexp()
}

// backtrackMatcher runs patterns on regexp2, which reports positions in runes.
//
// regexp2 numbers named groups after all unnamed ones. groups lists the
// regexp2 group numbers in the order the groups open in the source, so
// that both engines color `(?<n>a)(b)` the same way.
type backtrackMatcher struct {
	re     *regexp2.Regexp
	groups []int
}

func newBacktrackMatcher(re *regexp2.Regexp, src string) *backtrackMatcher {
	groups := groupsByPosition(src, re)
	if groups == nil {
		groups = re.GetGroupNumbers()[1:]
	}
	return &backtrackMatcher{re: re, groups: groups}
}

func (m *backtrackMatcher) NumGroups() int {
	return len(m.groups)
}

func (m *backtrackMatcher) FindAllIndex(line string) [][]int {
	var (
		all     [][]int
		offsets []int
	)

	match, err := m.re.FindStringMatch(line)
	for match != nil && err == nil {
		if offsets == nil {
			offsets = runeOffsets(line)
		}

		loc := make([]int, 2*(len(m.groups)+1))
		for i := range loc {
			loc[i] = -1
		}
		loc[0] = offsets[match.Index]
		loc[1] = offsets[match.Index+match.Length]
		for i, num := range m.groups {
			g := match.GroupByNumber(num)
			if g == nil || len(g.Captures) == 0 {
				continue
			}
			loc[2*(i+1)] = offsets[g.Index]
			loc[2*(i+1)+1] = offsets[g.Index+g.Length]
		}
		all = append(all, loc)

		match, err = m.re.FindNextMatch(match)
	}

	// Only a match timeout can fail here and none is configured.
	if err != nil {
		slog.Warn("Pattern matching stopped early", "pattern", m.re.String(), "error", err)
	}

	return all
}

// groupsByPosition scans src for capturing group openings and maps each to
// its regexp2 group number. It returns nil when the scan does not account
// for every group of re, for example with balancing groups or (?x) comments.
func groupsByPosition(src string, re *regexp2.Regexp) []int {
	want := re.GetGroupNumbers()[1:]
	if len(want) == 0 {
		return nil
	}

	var (
		groups   []int
		unnamed  int
		seen     = make(map[int]bool, len(want))
		addGroup = func(num int) bool {
			if num <= 0 || seen[num] {
				return false
			}
			seen[num] = true
			groups = append(groups, num)
			return true
		}
	)

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			i = skipClass(src, i)
		case '(':
			rest := src[i+1:]
			if !strings.HasPrefix(rest, "?") {
				unnamed++
				if !addGroup(unnamed) {
					return nil
				}
				continue
			}
			if strings.HasPrefix(rest, "?#") {
				end := strings.IndexByte(rest, ')')
				if end < 0 {
					return nil
				}
				i += end + 1
				continue
			}
			name, ok := groupName(rest[1:])
			if !ok {
				continue
			}
			if !addGroup(re.GroupNumberFromName(name)) {
				return nil
			}
		}
	}

	if len(groups) != len(want) {
		return nil
	}
	for _, num := range want {
		if !seen[num] {
			return nil
		}
	}
	return groups
}

// groupName extracts the name of a named group from the text following
// "(?". Lookbehinds and other constructs report false.
func groupName(s string) (string, bool) {
	s = strings.TrimPrefix(s, "P")
	if s == "" {
		return "", false
	}

	var closer byte
	switch s[0] {
	case '<':
		closer = '>'
	case '\'':
		closer = '\''
	default:
		return "", false
	}
	if len(s) > 1 && (s[1] == '=' || s[1] == '!') {
		return "", false
	}

	end := strings.IndexByte(s[1:], closer)
	if end <= 0 {
		return "", false
	}
	return s[1 : end+1], true
}

// skipClass returns the index of the ']' closing the character class that
// opens at src[i].
func skipClass(src string, i int) int {
	j := i + 1
	if j < len(src) && src[j] == '^' {
		j++
	}
	if j < len(src) && src[j] == ']' {
		j++
	}
	for ; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case ']':
			return j
		}
	}
	return len(src)
}

// runeOffsets maps rune positions to byte offsets in s. The extra trailing
// entry maps the end position. Invalid UTF-8 bytes count as one rune each,
// which is also how regexp2 decodes them.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
