package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/inkwhale/inkwhale/internal/log"
)

// ConfigPath returns the default configuration file path: ~/.inkwhale/config.yaml.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inkwhale/config.yaml"
	}
	return filepath.Join(home, ".inkwhale", "config.yaml")
}

// DataDir returns the inkwhale data directory: ~/.inkwhale.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inkwhale"
	}
	return filepath.Join(home, ".inkwhale")
}

// Load reads and parses the config file at path.
// If path is empty, ConfigPath() is used. A missing file yields the
// defaults; a file that fails to parse logs a warning and yields the
// defaults too, so a broken config never blocks startup.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warnf("Failed to parse config %s, using defaults: %v", path, err)
		cfg = DefaultConfig()
		return &cfg, nil
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML.
// If path is empty, ConfigPath() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
