package manifest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relprep/relprep/internal/testutil"
)

func TestNewSetter(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tool    string
		wantErr bool
	}{
		"cargo":        {tool: ToolCargo},
		"npm":          {tool: ToolNpm},
		"none":         {tool: ToolNone},
		"empty":        {tool: ""},
		"unknown tool": {tool: "poetry", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			setter, err := NewSetter(testutil.NewMockRunner(), tt.tool, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown manifest tool")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, setter)
		})
	}
}

func TestCargoSetVersion(t *testing.T) {
	t.Parallel()

	runner := testutil.NewMockRunner()
	setter, err := NewSetter(runner, ToolCargo, "/project")
	require.NoError(t, err)

	require.NoError(t, setter.SetVersion(context.Background(), "1.2.3"))

	calls := runner.CallsFor("cargo")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"set-version", "1.2.3"}, calls[0].Args)
	assert.Equal(t, "/project", calls[0].Dir)
}

func TestCargoSetVersionExtraArgs(t *testing.T) {
	t.Parallel()

	runner := testutil.NewMockRunner()
	setter, err := NewSetter(runner, ToolCargo, "", "--package", "mycrate")
	require.NoError(t, err)

	require.NoError(t, setter.SetVersion(context.Background(), "1.2.3"))

	calls := runner.CallsFor("cargo")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"set-version", "1.2.3", "--package", "mycrate"}, calls[0].Args)
	assert.Equal(t, "cargo set-version 1.2.3 --package mycrate", setter.Describe("1.2.3"))
}

func TestNpmSetVersion(t *testing.T) {
	t.Parallel()

	runner := testutil.NewMockRunner()
	setter, err := NewSetter(runner, ToolNpm, "/project")
	require.NoError(t, err)

	require.NoError(t, setter.SetVersion(context.Background(), "1.2.3"))

	calls := runner.CallsFor("npm")
	require.Len(t, calls, 1)
	assert.Equal(t,
		[]string{"version", "1.2.3", "--no-git-tag-version", "--allow-same-version"},
		calls[0].Args)
}

func TestSetVersionToolFailure(t *testing.T) {
	t.Parallel()

	runner := testutil.NewMockRunner()
	runner.HandleError("cargo", errors.New("no such subcommand: set-version"))

	setter, err := NewSetter(runner, ToolCargo, "")
	require.NoError(t, err)

	err = setter.SetVersion(context.Background(), "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting Cargo.toml version")
}

func TestNoopSetter(t *testing.T) {
	t.Parallel()

	runner := testutil.NewMockRunner()
	setter, err := NewSetter(runner, ToolNone, "")
	require.NoError(t, err)

	require.NoError(t, setter.SetVersion(context.Background(), "1.2.3"))
	assert.Empty(t, runner.Calls, "noop setter must not invoke anything")
	assert.Equal(t, "(no manifest configured)", setter.Describe("1.2.3"))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	runner := testutil.NewMockRunner()

	cargo, err := NewSetter(runner, ToolCargo, "")
	require.NoError(t, err)
	assert.Equal(t, "cargo set-version 1.0.0", cargo.Describe("1.0.0"))

	npm, err := NewSetter(runner, ToolNpm, "")
	require.NoError(t, err)
	assert.Equal(t, "npm version 1.0.0 --no-git-tag-version", npm.Describe("1.0.0"))
}
