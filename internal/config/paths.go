package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/relprep/config.yml
// - macOS: ~/Library/Application Support/relprep/config.yml
// - Windows: %APPDATA%\relprep\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relprep", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .relprep/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".relprep", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".relprep"
}
