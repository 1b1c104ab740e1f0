// Package config loads optional YAML defaults for the converter.
//
// The file is looked up at $HEXTOC_CONFIG, then ~/.hextoc.yaml. An
// absent file is not an error: flags simply fall back to the built-in
// defaults. A present but malformed file is an error — silently
// ignoring a config the operator wrote is worse than failing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// envVar overrides the config file location.
const envVar = "HEXTOC_CONFIG"

// fileName is the config file looked up in the home directory.
const fileName = ".hextoc.yaml"

// Defaults holds flag defaults read from the config file. Zero values
// mean "not set" and leave the built-in default in place.
type Defaults struct {
	Output    string `yaml:"output"`     // default output path
	Name      string `yaml:"name"`       // default array identifier
	Width     int    `yaml:"width"`      // default bytes per line
	HexFormat bool   `yaml:"hex_format"` // default to the 0xHH array style
}

// Load reads the defaults file if one exists. Returns the zero value
// and nil when no file is found.
func Load() (Defaults, error) {
	path := os.Getenv(envVar)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Defaults{}, nil
		}
		path = filepath.Join(home, fileName)
	}
	return LoadFile(path)
}

// LoadFile reads and validates a specific defaults file. A missing file
// yields the zero value with no error.
func LoadFile(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := d.validate(); err != nil {
		return Defaults{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return d, nil
}

// validate rejects values that would fail later in a less obvious place.
func (d Defaults) validate() error {
	if d.Width < 0 {
		return fmt.Errorf("width must be positive, got %d", d.Width)
	}
	return nil
}
