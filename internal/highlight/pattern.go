package highlight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
	"go.uber.org/multierr"
)

// Engine selects the regular expression implementation patterns compile with.
type Engine string

const (
	// EngineRE2 is the standard library RE2 engine (linear time, no backreferences)
	EngineRE2 Engine = "re2"
	// EnginePCRE is the backtracking regexp2 engine (lookaround, backreferences)
	EnginePCRE Engine = "pcre"
)

// ParseEngine validates an engine name. An empty name selects RE2.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineRE2:
		return EngineRE2, nil
	case EnginePCRE:
		return EnginePCRE, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// CompileOptions holds the global flags that affect pattern compilation.
type CompileOptions struct {
	FixedStrings bool
	IgnoreCase   bool
	Engine       Engine
}

// Pattern is a compiled user pattern. It is immutable once compiled.
type Pattern struct {
	Source          string
	FixedString     bool
	CaseInsensitive bool

	matcher Matcher
}

// NumGroups returns the number of capturing groups in the pattern.
func (p *Pattern) NumGroups() int {
	return p.matcher.NumGroups()
}

// FindAllIndex returns the submatch offsets of every match in line.
func (p *Pattern) FindAllIndex(line string) [][]int {
	return p.matcher.FindAllIndex(line)
}

// Compile compiles every source in order. The returned patterns are index
// aligned with sources. When one or more sources are invalid, the error
// combines one *PatternCompileError per invalid source.
func Compile(sources []string, opts CompileOptions) ([]*Pattern, error) {
	if len(sources) == 0 {
		return nil, ErrNoPatterns
	}

	engine, err := ParseEngine(string(opts.Engine))
	if err != nil {
		return nil, err
	}

	patterns := make([]*Pattern, len(sources))
	var errs error
	for i, src := range sources {
		m, err := compileMatcher(src, opts.FixedStrings, opts.IgnoreCase, engine)
		if err != nil {
			errs = multierr.Append(errs, &PatternCompileError{Index: i, Pattern: src, Err: err})
			continue
		}
		patterns[i] = &Pattern{
			Source:          src,
			FixedString:     opts.FixedStrings,
			CaseInsensitive: opts.IgnoreCase,
			matcher:         m,
		}
	}
	if errs != nil {
		return nil, errs
	}

	return patterns, nil
}

func compileMatcher(src string, fixed, ignoreCase bool, engine Engine) (Matcher, error) {
	if fixed {
		// A quoted literal has no groups, so RE2 always serves.
		src = regexp.QuoteMeta(src)
		engine = EngineRE2
	}

	switch engine {
	case EnginePCRE:
		opt := regexp2.None
		if ignoreCase {
			opt |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(src, opt)
		if err != nil {
			return nil, err
		}
		return newBacktrackMatcher(re, src), nil
	default:
		if ignoreCase {
			src = "(?i)" + src
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, err
		}
		return &re2Matcher{re: re}, nil
	}
}
