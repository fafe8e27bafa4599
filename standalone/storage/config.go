package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadConfig reads config.json from the application data directory.
// A missing file yields the defaults; a file that fails to parse is an
// error so a corrupt config never gets silently overwritten. Fields
// absent from the file are filled from the defaults, which lets old
// config files pick up new settings.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &Config{}
	if err := json.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// Distinguish "key absent" from "key set to its zero value"
	// (volume 0 is a real setting) before defaulting.
	ApplyMissingDefaults(config, detectPresentKeys(raw))
	return config, nil
}

// SaveConfig writes the configuration to config.json via a temp file
// rename so a crash mid-write cannot truncate it.
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return AtomicWriteJSON(path, config)
}

// CreateConfigIfMissing seeds a default config.json on first launch.
// An existing file is left untouched.
func CreateConfigIfMissing() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return SaveConfig(DefaultConfig())
	}
	return nil
}
