// Package gitrepo reads release information from the local checkout.
package gitrepo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/olivvybee/emojitools/domain"
)

// ResolveHeadTag returns the name of a tag pointing at HEAD of the repository
// rooted at path. Annotated tags are followed to their target commit.
// Returns domain.ErrNoTag when HEAD carries no tag.
func ResolveHeadTag(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %q: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	defer tags.Close()

	var found string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if obj, objErr := repo.TagObject(hash); objErr == nil {
			hash = obj.Target
		}
		if hash == head.Hash() {
			found = ref.Name().Short()
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to iterate tags: %w", err)
	}

	if found == "" {
		return "", fmt.Errorf("%w: HEAD is not tagged", domain.ErrNoTag)
	}
	return found, nil
}
