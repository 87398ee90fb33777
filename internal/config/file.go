package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "HILITE_CONFIG"

// ResolvePath picks the config file to load. An explicit path wins over
// $HILITE_CONFIG, which wins over the per-user default file. required is
// false only for the default file, whose absence is not an error.
func ResolvePath(explicit string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hilite", "config.toml"), false
}

// LoadFile decodes the TOML file at path onto o. Keys absent from the file
// keep their current value and unknown keys are rejected. A missing file
// is only an error when required is set. It reports whether a file was read.
func LoadFile(path string, required bool, o *Options) (bool, error) {
	if path == "" {
		return false, nil
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return false, fmt.Errorf("%w: %s: %s", ErrConfigParsing, path, strictErr.String())
		}
		return false, fmt.Errorf("%w: %s: %w", ErrConfigParsing, path, err)
	}

	return true, nil
}
