// Package config provides hierarchical configuration management for relprep
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.relprep/config.yml) > user config (~/.config/relprep/config.yml)
// > defaults. Both YAML and JSON file formats are accepted.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigSource tracks where a configuration value came from.
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceUser    ConfigSource = "user"
	SourceProject ConfigSource = "project"
	SourceEnv     ConfigSource = "env"
)

// ManifestConfig selects the package manager used to rewrite the project
// manifest's version field.
type ManifestConfig struct {
	// Tool is the package manager: "cargo", "npm", or "none".
	Tool string `koanf:"tool" validate:"omitempty,oneof=cargo npm none"`

	// Args holds extra arguments appended to the version-set invocation
	// (e.g. a cargo workspace package selector).
	Args []string `koanf:"args"`
}

// Configuration represents the relprep CLI tool configuration.
type Configuration struct {
	// CliffBin is the changelog generator binary.
	// Can be set via RELPREP_CLIFF_BIN env var.
	CliffBin string `koanf:"cliff_bin" validate:"notblank"`

	// ChangelogFile is the changelog path rewritten on each release,
	// relative to the repository root.
	ChangelogFile string `koanf:"changelog_file" validate:"notblank"`

	// Remote is the git remote used to derive the repository's web URL
	// and the suggested push command.
	Remote string `koanf:"remote" validate:"notblank"`

	// SignTags controls whether the release tag is GPG-signed.
	SignTags bool `koanf:"sign_tags"`

	// SkipConfirmations skips the version confirmation prompt
	// (can also be set via RELPREP_YES env var).
	SkipConfirmations bool `koanf:"skip_confirmations"`

	// CommitMarker is the decorative prefix of the release commit subject.
	CommitMarker string `koanf:"commit_marker"`

	// Manifest configures the package-manager version setter.
	Manifest ManifestConfig `koanf:"manifest"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relprep/config.yml)
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config file if present.
// YAML is preferred; a sibling config.json is accepted as an alternative.
func loadUserConfig(k *koanf.Koanf) error {
	yamlPath, err := UserConfigPath()
	if err != nil {
		// No resolvable home directory; user config simply does not apply.
		return nil
	}
	return loadConfigFile(k, yamlPath, jsonSibling(yamlPath), "user")
}

// loadProjectConfig loads the project-level config file if present.
// Supports a custom path override (the --config flag). The default path is
// optional, but an explicitly requested file must exist.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file %s does not exist", customPath)
		}
		return loadConfigFile(k, customPath, "", "project")
	}
	yamlPath := ProjectConfigPath()
	return loadConfigFile(k, yamlPath, jsonSibling(yamlPath), "project")
}

// loadConfigFile loads a YAML config if it exists, falling back to an
// optional JSON sibling. A custom path ending in .json is parsed as JSON.
func loadConfigFile(k *koanf.Koanf, yamlPath, jsonPath, configType string) error {
	switch {
	case strings.HasSuffix(yamlPath, ".json") && fileExists(yamlPath):
		if err := k.Load(file.Provider(yamlPath), json.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", configType, yamlPath, err)
		}
	case fileExists(yamlPath):
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating %s config: %w", configType, err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", configType, yamlPath, err)
		}
	case jsonPath != "" && fileExists(jsonPath):
		if err := k.Load(file.Provider(jsonPath), json.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", configType, jsonPath, err)
		}
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("RELPREP_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := ValidateConfigValues(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("RELPREP_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: RELPREP_CHANGELOG_FILE -> changelog_file
// Nested keys use double underscores: RELPREP_MANIFEST__TOOL -> manifest.tool
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "RELPREP_"))
	return strings.ReplaceAll(key, "__", ".")
}

// Sources reports the configuration layers in effect and where each one was
// read from. Defaults are always active; file layers appear only when their
// file exists, the env layer only when RELPREP_* variables are set.
func Sources(projectConfigPath string) map[ConfigSource]string {
	sources := map[ConfigSource]string{SourceDefault: "built-in"}

	if yamlPath, err := UserConfigPath(); err == nil {
		if found := firstExisting(yamlPath, jsonSibling(yamlPath)); found != "" {
			sources[SourceUser] = found
		}
	}

	if projectConfigPath != "" {
		if fileExists(projectConfigPath) {
			sources[SourceProject] = projectConfigPath
		}
	} else {
		yamlPath := ProjectConfigPath()
		if found := firstExisting(yamlPath, jsonSibling(yamlPath)); found != "" {
			sources[SourceProject] = found
		}
	}

	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "RELPREP_") {
			sources[SourceEnv] = "RELPREP_* environment"
			break
		}
	}

	return sources
}

// firstExisting returns the first path that exists, or empty string.
func firstExisting(paths ...string) string {
	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

// jsonSibling returns the .json path next to a .yml config path.
func jsonSibling(yamlPath string) string {
	return strings.TrimSuffix(yamlPath, ".yml") + ".json"
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
