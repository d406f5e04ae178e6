// Package yaml loads c7 configuration files written in YAML.
package yaml

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/context7"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that overrides DefaultConfigPath.
const ConfigEnv = "C7_CONFIG"

// DefaultConfigPath returns the config file location: $C7_CONFIG if set,
// otherwise c7/config.yaml under the user config directory.
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "c7", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file or empty path
// yields an empty Config.
func LoadConfig(path string) (context7.Config, error) {
	var cfg context7.Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return context7.Config{}, context7.Errorf(context7.EINVALID, "invalid config file %q: %s", path, err)
	}
	return cfg, nil
}
