package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relprep/relprep/internal/testutil"
)

func TestIsRepository(t *testing.T) {
	t.Parallel()

	repoDir := testutil.InitRepo(t)
	assert.True(t, IsRepository(repoDir))
	assert.False(t, IsRepository(t.TempDir()))
}

func TestRemoteURL(t *testing.T) {
	t.Parallel()

	repoDir := testutil.InitRepo(t)
	testutil.AddRemote(t, repoDir, "origin", "git@github.com:owner/repo.git")

	url, err := RemoteURL(repoDir, "origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:owner/repo.git", url)

	_, err = RemoteURL(repoDir, "upstream")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"upstream"`)
}

func TestLatestTag(t *testing.T) {
	t.Parallel()

	t.Run("no tags", func(t *testing.T) {
		t.Parallel()

		repoDir := testutil.InitRepo(t)
		latest, err := LatestTag(repoDir)
		require.NoError(t, err)
		assert.Empty(t, latest)
	})

	t.Run("highest semver wins over creation order", func(t *testing.T) {
		t.Parallel()

		repoDir := testutil.InitRepo(t)
		testutil.CreateAnnotatedTag(t, repoDir, "v0.10.0", "Release v0.10.0")
		testutil.CreateAnnotatedTag(t, repoDir, "v0.9.0", "Release v0.9.0")
		testutil.CreateAnnotatedTag(t, repoDir, "v0.2.0", "Release v0.2.0")

		latest, err := LatestTag(repoDir)
		require.NoError(t, err)
		assert.Equal(t, "v0.10.0", latest)
	})

	t.Run("non-release tags ignored", func(t *testing.T) {
		t.Parallel()

		repoDir := testutil.InitRepo(t)
		testutil.CreateLightweightTag(t, repoDir, "nightly")
		testutil.CreateLightweightTag(t, repoDir, "v1.0")
		testutil.CreateAnnotatedTag(t, repoDir, "v0.1.0", "Release v0.1.0")

		latest, err := LatestTag(repoDir)
		require.NoError(t, err)
		assert.Equal(t, "v0.1.0", latest)
	})
}

func TestTagExists(t *testing.T) {
	t.Parallel()

	repoDir := testutil.InitRepo(t)
	testutil.CreateAnnotatedTag(t, repoDir, "v1.0.0", "Release v1.0.0")

	exists, err := TagExists(repoDir, "v1.0.0")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = TagExists(repoDir, "v2.0.0")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHeadSummary(t *testing.T) {
	t.Parallel()

	repoDir := testutil.InitRepo(t)
	hash := testutil.CommitFile(t, repoDir, "feature.go", "package main\n",
		"feat: add feature\n\nlonger body text")

	summary, err := HeadSummary(repoDir)
	require.NoError(t, err)
	assert.Equal(t, hash.String()[:7]+" feat: add feature", summary)
	assert.False(t, strings.Contains(summary, "longer body"), "summary should only carry the subject")
}

func TestTagAnnotation(t *testing.T) {
	t.Parallel()

	t.Run("annotated tag returns message", func(t *testing.T) {
		t.Parallel()

		repoDir := testutil.InitRepo(t)
		testutil.CreateAnnotatedTag(t, repoDir, "v1.0.0", "Release v1.0.0\n\nFeatures\n- initial release\n")

		annotation, err := TagAnnotation(repoDir, "v1.0.0")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(annotation, "Release v1.0.0"))
		assert.Contains(t, annotation, "initial release")
	})

	t.Run("lightweight tag returns empty", func(t *testing.T) {
		t.Parallel()

		repoDir := testutil.InitRepo(t)
		testutil.CreateLightweightTag(t, repoDir, "v1.0.0")

		annotation, err := TagAnnotation(repoDir, "v1.0.0")
		require.NoError(t, err)
		assert.Empty(t, annotation)
	})

	t.Run("missing tag errors", func(t *testing.T) {
		t.Parallel()

		repoDir := testutil.InitRepo(t)
		_, err := TagAnnotation(repoDir, "v9.9.9")
		require.Error(t, err)
	})
}
