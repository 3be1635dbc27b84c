package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = "splitdiff"
	configFileName = "config.json"
)

// Load reads the partial options from the default config path.
func Load() (Options, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Options{}, "", err
	}
	opts, err := LoadFromPath(path)
	return opts, path, err
}

// LoadFromPath reads partial options from a JSON file. A missing or empty
// file yields zero Options, which normalize to pure defaults. Only broken
// JSON is an error; out-of-range values are left for Normalize to fix.
func LoadFromPath(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, nil
		}
		return Options{}, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return Options{}, nil
	}

	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse config: %w", err)
	}
	return opts, nil
}

func DefaultPath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
