package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality.
type Manager interface {
	// Load loads configuration from the specified file path.
	Load(configPath string) (Config, error)

	// LoadWithFallback loads configuration from the specified file path,
	// falling back to the default configuration if the file is missing.
	LoadWithFallback(configPath string) (Config, error)

	// Default returns the default configuration.
	Default() Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// Load loads configuration from the specified file path.
func (m *realManager) Load(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names
	config := m.Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadWithFallback loads configuration from the specified file path,
// falling back to the default configuration if the file is missing.
// Parse and validation errors are still surfaced: a present-but-broken
// config file should never be silently ignored.
func (m *realManager) LoadWithFallback(configPath string) (Config, error) {
	config, err := m.Load(configPath)
	if err != nil {
		if os.IsNotExist(err) || isNotFound(err) {
			return m.Default(), nil
		}
		return Config{}, err
	}
	return config, nil
}

// Default returns the default configuration.
func (m *realManager) Default() Config {
	return Config{
		Settings: Settings{
			CopyUntrackedFiles:        true,
			CopyDependencyDirectories: false,
			WorktreePathTemplate:      "../{repo}-{branch}",
		},
	}
}
