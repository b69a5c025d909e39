package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// testSignature returns a deterministic author for fixture commits.
func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// InitRepo creates a temporary git repository with a single initial commit
// and returns its path. The repository is created with go-git, so no git
// binary is required.
func InitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	CommitFileIn(t, repo, dir, "README.md", "# test\n", "initial commit")
	return dir
}

// OpenRepo opens a fixture repository created by InitRepo.
func OpenRepo(t *testing.T, dir string) *gogit.Repository {
	t.Helper()

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	return repo
}

// CommitFile writes a file in the repository at dir and commits it.
func CommitFile(t *testing.T, dir, name, content, message string) plumbing.Hash {
	t.Helper()
	return CommitFileIn(t, OpenRepo(t, dir), dir, name, content, message)
}

// CommitFileIn writes and commits a file using an already opened repository.
func CommitFileIn(t *testing.T, repo *gogit.Repository, dir, name, content, message string) plumbing.Hash {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	_, err = worktree.Add(name)
	require.NoError(t, err)

	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		Author:    testSignature(),
		Committer: testSignature(),
	})
	require.NoError(t, err)
	return hash
}

// CreateAnnotatedTag creates an annotated (unsigned) tag on HEAD.
func CreateAnnotatedTag(t *testing.T, dir, name, message string) {
	t.Helper()

	repo := OpenRepo(t, dir)
	head, err := repo.Head()
	require.NoError(t, err)

	_, err = repo.CreateTag(name, head.Hash(), &gogit.CreateTagOptions{
		Tagger:  testSignature(),
		Message: message,
	})
	require.NoError(t, err)
}

// CreateLightweightTag creates a lightweight tag on HEAD.
func CreateLightweightTag(t *testing.T, dir, name string) {
	t.Helper()

	repo := OpenRepo(t, dir)
	head, err := repo.Head()
	require.NoError(t, err)

	_, err = repo.CreateTag(name, head.Hash(), nil)
	require.NoError(t, err)
}

// AddRemote configures a named remote on the fixture repository.
func AddRemote(t *testing.T, dir, name, url string) {
	t.Helper()

	repo := OpenRepo(t, dir)
	_, err := repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	require.NoError(t, err)
}
