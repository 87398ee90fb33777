package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names
const (
	FlagFixedStrings       = "fixed-strings"
	FlagNoHighlight        = "no-highlight"
	FlagOnlyHighlight      = "only-highlight"
	FlagIgnoreCase         = "ignore-case"
	FlagFullMatchHighlight = "full-match-highlight"
	FlagOnlyMatchingLines  = "only-matching-lines"
	FlagVaryGroups         = "vary-groups"
	FlagNoVaryGroups       = "no-vary-groups"
	FlagLineBuffered       = "line-buffered"
	FlagDebug              = "debug"
	FlagColor              = "color"
	FlagEngine             = "engine"
	FlagPalette            = "palette"
)

type boolFlag struct {
	name      string
	shorthand string
	usage     string
	field     func(*Options) *bool
}

var boolFlags = []boolFlag{
	{FlagFixedStrings, "F", "Match patterns as literal strings", func(o *Options) *bool { return &o.FixedStrings }},
	{FlagNoHighlight, "h", "Do not color by changing the background color", func(o *Options) *bool { return &o.NoHighlight }},
	{FlagOnlyHighlight, "H", "Only color by changing the background color", func(o *Options) *bool { return &o.OnlyHighlight }},
	{FlagIgnoreCase, "i", "Perform case-insensitive matching", func(o *Options) *bool { return &o.IgnoreCase }},
	{FlagFullMatchHighlight, "f", "Color whole matches and ignore capturing groups", func(o *Options) *bool { return &o.FullMatchHighlight }},
	{FlagOnlyMatchingLines, "o", "Only print lines matched by at least one pattern", func(o *Options) *bool { return &o.OnlyMatchingLines }},
	{FlagVaryGroups, "g", "Give every capturing group its own color", func(o *Options) *bool { return &o.VaryGroupsOn }},
	{FlagNoVaryGroups, "G", "Color capturing groups with their pattern's color", func(o *Options) *bool { return &o.VaryGroupsOff }},
	{FlagLineBuffered, "", "Flush output after every line", func(o *Options) *bool { return &o.LineBuffered }},
	{FlagDebug, "", "More verbose output on errors", func(o *Options) *bool { return &o.Debug }},
}

// exclusivePairs lists bool options that cannot both be true. Setting one
// on the command line clears the other unless it was set there as well.
var exclusivePairs = [][2]string{
	{FlagNoHighlight, FlagOnlyHighlight},
	{FlagVaryGroups, FlagNoVaryGroups},
}

// RegisterFlags defines every option flag on fs. Flag defaults are only
// shown in help; values reach Options through ApplyFlags, which copies the
// flags the user actually set.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := Default()
	for _, f := range boolFlags {
		fs.BoolP(f.name, f.shorthand, *f.field(&defaults), f.usage)
	}
	fs.String(FlagColor, string(defaults.Color), "When to emit colors: auto, always or never")
	fs.String(FlagEngine, defaults.Engine, "Regular expression engine: re2 or pcre")
	fs.StringSlice(FlagPalette, nil, "Comma separated color names to cycle through (default red,green,yellow,blue,magenta,cyan)")
}

// ApplyFlags overlays every flag explicitly set on fs onto o.
func (o *Options) ApplyFlags(fs *pflag.FlagSet) error {
	for _, f := range boolFlags {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetBool(f.name)
		if err != nil {
			return fmt.Errorf("failed to read --%s: %w", f.name, err)
		}
		*f.field(o) = v
	}
	o.clearOverridden(fs)

	if fs.Changed(FlagColor) {
		v, err := fs.GetString(FlagColor)
		if err != nil {
			return fmt.Errorf("failed to read --%s: %w", FlagColor, err)
		}
		o.Color = ColorMode(v)
	}
	if fs.Changed(FlagEngine) {
		v, err := fs.GetString(FlagEngine)
		if err != nil {
			return fmt.Errorf("failed to read --%s: %w", FlagEngine, err)
		}
		o.Engine = v
	}
	if fs.Changed(FlagPalette) {
		v, err := fs.GetStringSlice(FlagPalette)
		if err != nil {
			return fmt.Errorf("failed to read --%s: %w", FlagPalette, err)
		}
		o.Palette = v
	}

	return nil
}

// clearOverridden drops values from a lower layer that conflict with a
// flag given on the command line.
func (o *Options) clearOverridden(fs *pflag.FlagSet) {
	fields := make(map[string]*bool, len(boolFlags))
	for _, f := range boolFlags {
		fields[f.name] = f.field(o)
	}

	for _, pair := range exclusivePairs {
		first, second := pair[0], pair[1]
		switch {
		case fs.Changed(first) && fs.Changed(second):
			// Both on the command line: Validate reports the conflict
		case fs.Changed(first) && *fields[first]:
			*fields[second] = false
		case fs.Changed(second) && *fields[second]:
			*fields[first] = false
		}
	}
}
