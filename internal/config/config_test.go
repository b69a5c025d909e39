package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the user config lookup at an empty directory so tests
// never pick up the developer's real ~/.config/relprep.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// missingProjectConfig returns a path that does not exist.
func missingProjectConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yml")
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "git-cliff", cfg.CliffBin)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
	assert.Equal(t, "origin", cfg.Remote)
	assert.True(t, cfg.SignTags)
	assert.False(t, cfg.SkipConfirmations)
	assert.Equal(t, "🔖", cfg.CommitMarker)
	assert.Equal(t, "none", cfg.Manifest.Tool)
}

func TestLoadProjectConfig(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", `
cliff_bin: /opt/bin/git-cliff
changelog_file: docs/CHANGES.md
remote: upstream
sign_tags: false
commit_marker: ""
manifest:
  tool: cargo
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/git-cliff", cfg.CliffBin)
	assert.Equal(t, "docs/CHANGES.md", cfg.ChangelogFile)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.False(t, cfg.SignTags)
	assert.Empty(t, cfg.CommitMarker)
	assert.Equal(t, "cargo", cfg.Manifest.Tool)
}

func TestLoadProjectConfigPartial(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", "remote: fork\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fork", cfg.Remote)
	assert.Equal(t, "git-cliff", cfg.CliffBin, "unset keys keep their defaults")
	assert.True(t, cfg.SignTags)
}

func TestLoadJSONConfig(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.json", `{"remote": "gitlab", "manifest": {"tool": "npm"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gitlab", cfg.Remote)
	assert.Equal(t, "npm", cfg.Manifest.Tool)
}

func TestLoadUserConfig(t *testing.T) {
	isolateHome(t)

	userDir, err := os.UserConfigDir()
	require.NoError(t, err)
	relprepDir := filepath.Join(userDir, "relprep")
	require.NoError(t, os.MkdirAll(relprepDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(relprepDir, "config.yml"),
		[]byte("changelog_file: HISTORY.md\nremote: backup\n"), 0o644))

	t.Run("user values apply", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "HISTORY.md", cfg.ChangelogFile)
		assert.Equal(t, "backup", cfg.Remote)
	})

	t.Run("project overrides user", func(t *testing.T) {
		path := writeConfig(t, "config.yml", "remote: origin\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "origin", cfg.Remote)
		assert.Equal(t, "HISTORY.md", cfg.ChangelogFile, "untouched user values survive")
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", "remote: upstream\n")

	t.Setenv("RELPREP_REMOTE", "origin")
	t.Setenv("RELPREP_CLIFF_BIN", "/usr/local/bin/git-cliff")
	t.Setenv("RELPREP_SIGN_TAGS", "false")
	t.Setenv("RELPREP_MANIFEST__TOOL", "cargo")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "origin", cfg.Remote, "environment beats the project file")
	assert.Equal(t, "/usr/local/bin/git-cliff", cfg.CliffBin)
	assert.False(t, cfg.SignTags)
	assert.Equal(t, "cargo", cfg.Manifest.Tool)
}

func TestRelprepYesSkipsConfirmations(t *testing.T) {
	isolateHome(t)
	t.Setenv("RELPREP_YES", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.SkipConfirmations)
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	isolateHome(t)

	path := missingProjectConfig(t)
	_, err := Load(path)
	require.Error(t, err, "a typoed --config path must not silently fall back to defaults")
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadInvalidManifestTool(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", "manifest:\n  tool: poetry\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest.tool")
}

func TestLoadEmptyRequiredValue(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", `cliff_bin: ""`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cliff_bin")
}

func TestLoadMalformedYAML(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", "remote: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadManifestArgs(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "config.yml", `
manifest:
  tool: cargo
  args: ["--package", "mycrate"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cargo", cfg.Manifest.Tool)
	assert.Equal(t, []string{"--package", "mycrate"}, cfg.Manifest.Args)
}

func TestSources(t *testing.T) {
	isolateHome(t)

	t.Run("defaults only", func(t *testing.T) {
		sources := Sources(missingProjectConfig(t))
		assert.Equal(t, "built-in", sources[SourceDefault])
		assert.NotContains(t, sources, SourceProject)
		assert.NotContains(t, sources, SourceUser)
	})

	t.Run("project file reported", func(t *testing.T) {
		path := writeConfig(t, "config.yml", "remote: origin\n")
		sources := Sources(path)
		assert.Equal(t, path, sources[SourceProject])
	})

	t.Run("environment layer reported", func(t *testing.T) {
		t.Setenv("RELPREP_REMOTE", "origin")
		sources := Sources(missingProjectConfig(t))
		assert.Contains(t, sources, SourceEnv)
	})
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"flat key":   {in: "RELPREP_CHANGELOG_FILE", want: "changelog_file"},
		"nested key": {in: "RELPREP_MANIFEST__TOOL", want: "manifest.tool"},
		"lowercased": {in: "RELPREP_REMOTE", want: "remote"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, envTransform(tt.in))
		})
	}
}
