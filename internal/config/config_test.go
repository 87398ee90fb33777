package config

import (
	"errors"
	"testing"

	"github.com/isseis/go-hilite/internal/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_ConflictingFlags(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*Options)
		wantFirst  string
		wantSecond string
	}{
		{
			name:       "highlight modes",
			modify:     func(o *Options) { o.NoHighlight, o.OnlyHighlight = true, true },
			wantFirst:  FlagNoHighlight,
			wantSecond: FlagOnlyHighlight,
		},
		{
			name:       "group variance",
			modify:     func(o *Options) { o.VaryGroupsOn, o.VaryGroupsOff = true, true },
			wantFirst:  FlagVaryGroups,
			wantSecond: FlagNoVaryGroups,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Default()
			tt.modify(&o)

			var conflict *ConflictingFlagsError
			require.ErrorAs(t, o.Validate(), &conflict)
			assert.Equal(t, tt.wantFirst, conflict.First)
			assert.Equal(t, tt.wantSecond, conflict.Second)
			assert.Contains(t, conflict.Error(), "mutually exclusive")
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	o := Options{
		NoHighlight:   true,
		OnlyHighlight: true,
		VaryGroupsOn:  true,
		VaryGroupsOff: true,
		Color:         "sometimes",
		Engine:        "awk",
		Palette:       []string{"red", "mauve"},
	}

	errs := multierr.Errors(o.Validate())
	require.Len(t, errs, 5)

	var conflicts int
	for _, err := range errs {
		var conflict *ConflictingFlagsError
		if errors.As(err, &conflict) {
			conflicts++
		}
	}
	assert.Equal(t, 2, conflicts)
	assert.ErrorIs(t, errs[2], ErrInvalidColorMode)
	assert.ErrorIs(t, errs[3], highlight.ErrUnknownEngine)
	assert.ErrorIs(t, errs[4], highlight.ErrUnknownColor)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAlways, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"yes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColorMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions_Mode(t *testing.T) {
	assert.Equal(t, highlight.ModeBoth, Options{}.Mode())
	assert.Equal(t, highlight.ModeForeground, Options{NoHighlight: true}.Mode())
	assert.Equal(t, highlight.ModeBackground, Options{OnlyHighlight: true}.Mode())
}

func TestOptions_VaryPolicy(t *testing.T) {
	assert.Equal(t, highlight.VaryAuto, Options{}.VaryPolicy())
	assert.Equal(t, highlight.VaryOn, Options{VaryGroupsOn: true}.VaryPolicy())
	assert.Equal(t, highlight.VaryOff, Options{VaryGroupsOff: true}.VaryPolicy())
}

func TestOptions_HighlightOptions(t *testing.T) {
	o := Default()
	o.FixedStrings = true
	o.IgnoreCase = true
	o.FullMatchHighlight = true
	o.OnlyHighlight = true
	o.VaryGroupsOff = true
	o.Engine = "pcre"
	o.Palette = []string{"blue"}

	got, err := o.HighlightOptions(true)
	require.NoError(t, err)

	assert.Equal(t, highlight.Options{
		Compile: highlight.CompileOptions{
			FixedStrings: true,
			IgnoreCase:   true,
			Engine:       highlight.EnginePCRE,
		},
		Palette:   highlight.Palette{highlight.ColorOf(4)},
		Vary:      highlight.VaryOff,
		FullMatch: true,
		Mode:      highlight.ModeBackground,
		Plain:     true,
	}, got)
}

func TestOptions_HighlightOptionsDefaultPalette(t *testing.T) {
	got, err := Default().HighlightOptions(false)
	require.NoError(t, err)

	assert.Equal(t, highlight.DefaultPalette, got.Palette)
	assert.Equal(t, highlight.EngineRE2, got.Compile.Engine)
	assert.False(t, got.Plain)
}

func TestOptions_StreamOptions(t *testing.T) {
	o := Options{OnlyMatchingLines: true, LineBuffered: true}
	got := o.StreamOptions()

	assert.True(t, got.OnlyMatchingLines)
	assert.True(t, got.LineBuffered)
}
