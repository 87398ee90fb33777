// Package config holds the validated option record that drives a run. The
// record is assembled from built-in defaults, an optional TOML file and the
// command line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/isseis/go-hilite/internal/highlight"
	"github.com/isseis/go-hilite/internal/stream"
	"go.uber.org/multierr"
)

// ColorMode decides when escape sequences are emitted.
type ColorMode string

// Color modes
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Options is the configuration record consumed by the highlighter and the
// line loop.
type Options struct {
	FixedStrings       bool      `toml:"fixed_strings"`
	NoHighlight        bool      `toml:"no_highlight"`
	OnlyHighlight      bool      `toml:"only_highlight"`
	IgnoreCase         bool      `toml:"ignore_case"`
	FullMatchHighlight bool      `toml:"full_match_highlight"`
	OnlyMatchingLines  bool      `toml:"only_matching_lines"`
	VaryGroupsOn       bool      `toml:"vary_groups"`
	VaryGroupsOff      bool      `toml:"no_vary_groups"`
	LineBuffered       bool      `toml:"line_buffered"`
	Debug              bool      `toml:"debug"`
	Color              ColorMode `toml:"color"`
	Engine             string    `toml:"engine"`
	Palette            []string  `toml:"palette"`
}

// Default returns the built-in defaults. Color is always on, matching
// tools that are mostly used at the end of a pipe into a terminal.
func Default() Options {
	return Options{
		Color:  ColorAlways,
		Engine: string(highlight.EngineRE2),
	}
}

// Validate reports every invalid combination of options. Mutually exclusive
// options are reported as *ConflictingFlagsError.
func (o Options) Validate() error {
	var errs error

	if o.NoHighlight && o.OnlyHighlight {
		errs = multierr.Append(errs, &ConflictingFlagsError{First: FlagNoHighlight, Second: FlagOnlyHighlight})
	}
	if o.VaryGroupsOn && o.VaryGroupsOff {
		errs = multierr.Append(errs, &ConflictingFlagsError{First: FlagVaryGroups, Second: FlagNoVaryGroups})
	}
	if _, err := ParseColorMode(string(o.Color)); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := highlight.ParseEngine(o.Engine); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := highlight.ParsePalette(o.Palette); err != nil {
		errs = multierr.Append(errs, err)
	}

	return errs
}

// ParseColorMode validates a color mode name. An empty name selects always.
func ParseColorMode(name string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return ColorAlways, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, name)
	}
}

// Mode returns the render mode selected by the highlight options.
func (o Options) Mode() highlight.Mode {
	switch {
	case o.NoHighlight:
		return highlight.ModeForeground
	case o.OnlyHighlight:
		return highlight.ModeBackground
	default:
		return highlight.ModeBoth
	}
}

// VaryPolicy returns the group color policy selected by the vary options.
func (o Options) VaryPolicy() highlight.VaryPolicy {
	switch {
	case o.VaryGroupsOn:
		return highlight.VaryOn
	case o.VaryGroupsOff:
		return highlight.VaryOff
	default:
		return highlight.VaryAuto
	}
}

// HighlightOptions converts the record into highlighter options. plain
// disables escape sequences. The record must have passed Validate.
func (o Options) HighlightOptions(plain bool) (highlight.Options, error) {
	engine, err := highlight.ParseEngine(o.Engine)
	if err != nil {
		return highlight.Options{}, err
	}
	palette, err := highlight.ParsePalette(o.Palette)
	if err != nil {
		return highlight.Options{}, err
	}

	return highlight.Options{
		Compile: highlight.CompileOptions{
			FixedStrings: o.FixedStrings,
			IgnoreCase:   o.IgnoreCase,
			Engine:       engine,
		},
		Palette:   palette,
		Vary:      o.VaryPolicy(),
		FullMatch: o.FullMatchHighlight,
		Mode:      o.Mode(),
		Plain:     plain,
	}, nil
}

// StreamOptions returns the options of the line loop.
func (o Options) StreamOptions() stream.Options {
	return stream.Options{
		OnlyMatchingLines: o.OnlyMatchingLines,
		LineBuffered:      o.LineBuffered,
	}
}
