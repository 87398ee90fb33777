package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
only_highlight = true
ignore_case = true
color = "auto"
engine = "pcre"
palette = ["cyan", "magenta"]
`)

	o := Default()
	loaded, err := LoadFile(path, true, &o)
	require.NoError(t, err)
	assert.True(t, loaded)

	assert.True(t, o.OnlyHighlight)
	assert.True(t, o.IgnoreCase)
	assert.False(t, o.NoHighlight)
	assert.Equal(t, ColorAuto, o.Color)
	assert.Equal(t, "pcre", o.Engine)
	assert.Equal(t, []string{"cyan", "magenta"}, o.Palette)
}

func TestLoadFile_KeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, "fixed_strings = true\n")

	o := Default()
	_, err := LoadFile(path, true, &o)
	require.NoError(t, err)

	assert.True(t, o.FixedStrings)
	assert.Equal(t, ColorAlways, o.Color)
	assert.Equal(t, "re2", o.Engine)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "no_hilight = true\n")

	o := Default()
	_, err := LoadFile(path, true, &o)
	assert.ErrorIs(t, err, ErrConfigParsing)
	assert.Contains(t, err.Error(), "no_hilight")
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "color = \n")

	o := Default()
	_, err := LoadFile(path, true, &o)
	assert.ErrorIs(t, err, ErrConfigParsing)
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	o := Default()
	loaded, err := LoadFile(path, false, &o)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, Default(), o)

	_, err = LoadFile(path, true, &o)
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestLoadFile_EmptyPath(t *testing.T) {
	o := Default()
	loaded, err := LoadFile("", true, &o)
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/from/env.toml")
		path, required := ResolvePath("/explicit.toml")
		assert.Equal(t, "/explicit.toml", path)
		assert.True(t, required)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/from/env.toml")
		path, required := ResolvePath("")
		assert.Equal(t, "/from/env.toml", path)
		assert.True(t, required)
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		path, required := ResolvePath("")
		assert.Equal(t, filepath.Join("/xdg", "hilite", "config.toml"), path)
		assert.False(t, required)
	})

	t.Run("home directory fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		path, required := ResolvePath("")
		assert.Equal(t, filepath.Join(home, ".config", "hilite", "config.toml"), path)
		assert.False(t, required)
	})
}
