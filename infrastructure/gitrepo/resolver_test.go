package gitrepo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivvybee/emojitools/domain"
	"github.com/olivvybee/emojitools/infrastructure/gitrepo"
)

func newRepoWithCommit(t *testing.T) (*git.Repository, string, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "blobfox.svg"), []byte("<svg/>"), 0o644))
	_, err = wt.Add("blobfox.svg")
	require.NoError(t, err)

	hash, err := wt.Commit("Add blobfox", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return repo, dir, hash
}

func TestResolveHeadTag(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a lightweight tag at HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		repo, dir, hash := newRepoWithCommit(t)
		_, err := repo.CreateTag("v2.4.0", hash, nil)
		require.NoError(t, err)

		// when
		tag, err := gitrepo.ResolveHeadTag(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "v2.4.0", tag)
	})

	t.Run("should follow an annotated tag to its target commit", func(t *testing.T) {
		t.Parallel()

		// given
		repo, dir, hash := newRepoWithCommit(t)
		_, err := repo.CreateTag("v2.5.0", hash, &git.CreateTagOptions{
			Message: "release v2.5.0",
			Tagger: &object.Signature{
				Name:  "Test",
				Email: "test@example.com",
				When:  time.Now(),
			},
		})
		require.NoError(t, err)

		// when
		tag, err := gitrepo.ResolveHeadTag(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "v2.5.0", tag)
	})

	t.Run("should report ErrNoTag when HEAD is untagged", func(t *testing.T) {
		t.Parallel()

		// given
		_, dir, _ := newRepoWithCommit(t)

		// when
		_, err := gitrepo.ResolveHeadTag(dir)

		// then
		require.ErrorIs(t, err, domain.ErrNoTag)
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := gitrepo.ResolveHeadTag(t.TempDir())

		// then
		require.Error(t, err)
	})
}
