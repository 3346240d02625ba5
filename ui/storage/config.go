// Package storage loads and saves the kiosk configuration.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
)

// AppDirName is the per-user config directory name
const AppDirName = "harbourkiosk"

// DefaultConfigPath returns the per-user config.json location
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, "config.json"), nil
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	// Check if file exists
	if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	// Decode over the defaults so fields missing from the file keep them.
	// Args are the exception: the default args only suit the default command.
	config := DefaultConfig()
	config.Player.Args = nil
	if err := ReadJSON(fs, path, config); err != nil {
		return nil, err
	}
	if config.Player.Args == nil && config.Player.Command == DefaultPlayerCommand {
		config.Player.Args = DefaultPlayerArgs()
	}

	return migrateConfig(config), nil
}

// SaveConfig saves the configuration to path atomically
func SaveConfig(fs afero.Fs, path string, config *Config) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return AtomicWriteJSON(fs, path, config)
}

// CreateConfigIfMissing creates a default config.json if it doesn't exist.
// Returns true when a file was written.
func CreateConfigIfMissing(fs afero.Fs, path string) (bool, error) {
	if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
		return true, SaveConfig(fs, path, DefaultConfig())
	}
	return false, nil
}

// ApplyEnv overrides config values from KIOSK_* environment variables.
// Unset variables leave the loaded values untouched.
// A new player command without KIOSK_PLAYER_ARGS drops the previous args.
func ApplyEnv(config *Config) error {
	command := config.Player.Command
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if _, ok := os.LookupEnv("KIOSK_PLAYER_ARGS"); !ok && config.Player.Command != command {
		config.Player.Args = nil
	}
	migrateConfig(config)
	return nil
}

// migrateConfig handles any necessary migrations from older config versions
func migrateConfig(config *Config) *Config {
	// Currently at version 1, no migrations needed
	if config.Version == 0 {
		config.Version = 1
	}

	// Replace values that would leave the kiosk unusable
	defaults := DefaultConfig()
	if config.Window.Width <= 0 {
		config.Window.Width = defaults.Window.Width
	}
	if config.Window.Height <= 0 {
		config.Window.Height = defaults.Window.Height
	}
	if config.Display.DesignWidth <= 0 {
		config.Display.DesignWidth = defaults.Display.DesignWidth
	}
	if config.Display.DesignHeight <= 0 {
		config.Display.DesignHeight = defaults.Display.DesignHeight
	}
	if config.Display.HotspotOpacity < 0 || config.Display.HotspotOpacity > 1 {
		config.Display.HotspotOpacity = defaults.Display.HotspotOpacity
	}
	if config.Player.Kind == "" {
		config.Player.Kind = defaults.Player.Kind
	}
	if config.Player.Kind == PlayerExec && config.Player.Command == "" {
		config.Player.Command = DefaultPlayerCommand
		config.Player.Args = DefaultPlayerArgs()
	}
	if config.Player.TimerSeconds <= 0 {
		config.Player.TimerSeconds = defaults.Player.TimerSeconds
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}

	return config
}
