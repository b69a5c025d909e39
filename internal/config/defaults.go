package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relprep configuration
# Priority: environment (RELPREP_*) > .relprep/config.yml > user config > defaults

# Changelog generator
cliff_bin: git-cliff        # Changelog generator binary
changelog_file: CHANGELOG.md # Changelog path, rewritten on each release

# Git settings
remote: origin              # Remote used for the push reminder and web URL
sign_tags: true             # GPG-sign the release tag

# Prompts
skip_confirmations: false   # Accept the suggested version without asking (RELPREP_YES)

# Release commit
commit_marker: "🔖"         # Decorative prefix of the release commit subject

# Project manifest
manifest:
  tool: none                # Package manager for the version field: cargo | npm | none
  # args: [--package, mycrate]  # Extra arguments for the version-set invocation
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"cliff_bin":      "git-cliff",
		"changelog_file": "CHANGELOG.md",
		"remote":         "origin",
		// sign_tags: release tags are signed by default; the whole point of
		// the tool is producing a verifiable release tag.
		"sign_tags":          true,
		"skip_confirmations": false,
		"commit_marker":      "🔖",
		"manifest": map[string]interface{}{
			"tool": "none",
		},
	}
}
