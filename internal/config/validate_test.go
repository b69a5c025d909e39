package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content *string
		wantErr bool
	}{
		"missing file":   {content: nil},
		"empty file":     {content: strPtr("")},
		"whitespace":     {content: strPtr("  \n\n")},
		"valid yaml":     {content: strPtr("remote: origin\n")},
		"malformed yaml": {content: strPtr("remote: [unclosed\n"), wantErr: true},
		"tab indent":     {content: strPtr("manifest:\n\ttool: cargo\n"), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			err := ValidateYAMLSyntax(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), path)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConfigValues(t *testing.T) {
	t.Parallel()

	valid := func() *Configuration {
		return &Configuration{
			CliffBin:      "git-cliff",
			ChangelogFile: "CHANGELOG.md",
			Remote:        "origin",
		}
	}

	tests := map[string]struct {
		mutate    func(*Configuration)
		wantField string
		wantMsg   string
	}{
		"valid config": {mutate: func(*Configuration) {}},
		"empty manifest tool is valid": {
			mutate: func(cfg *Configuration) { cfg.Manifest.Tool = "" },
		},
		"cargo tool is valid": {
			mutate: func(cfg *Configuration) { cfg.Manifest.Tool = "cargo" },
		},
		"empty cliff_bin": {
			mutate:    func(cfg *Configuration) { cfg.CliffBin = "" },
			wantField: "cliff_bin",
			wantMsg:   "must not be empty",
		},
		"blank changelog_file": {
			mutate:    func(cfg *Configuration) { cfg.ChangelogFile = "   " },
			wantField: "changelog_file",
			wantMsg:   "must not be empty",
		},
		"empty remote": {
			mutate:    func(cfg *Configuration) { cfg.Remote = "" },
			wantField: "remote",
			wantMsg:   "must not be empty",
		},
		"unknown manifest tool": {
			mutate:    func(cfg *Configuration) { cfg.Manifest.Tool = "pip" },
			wantField: "manifest.tool",
			wantMsg:   "must be one of: cargo, npm, none",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := ValidateConfigValues(cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cliff_bin", toSnakeCase("CliffBin"))
	assert.Equal(t, "changelog_file", toSnakeCase("ChangelogFile"))
	assert.Equal(t, "tool", toSnakeCase("Tool"))
}

func strPtr(s string) *string { return &s }
