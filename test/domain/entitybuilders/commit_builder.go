package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/olivvybee/emojitools/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CommitBuilder helps create test commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	message    string
	login      string
	profileURL string
}

// NewCommitBuilder creates a new commit builder with sensible defaults.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		message:     "Add blobfox emoji",
		login:       "contributor",
		profileURL:  "https://github.com/contributor",
	}
}

// WithMessage sets the commit message.
func (b *CommitBuilder) WithMessage(message string) *CommitBuilder {
	b.message = message
	return b
}

// WithAuthor sets the author login and derives the profile URL from it.
func (b *CommitBuilder) WithAuthor(login string) *CommitBuilder {
	b.login = login
	if login == "" {
		b.profileURL = ""
	} else {
		b.profileURL = "https://github.com/" + login
	}
	return b
}

// WithProfileURL overrides the author profile URL.
func (b *CommitBuilder) WithProfileURL(url string) *CommitBuilder {
	b.profileURL = url
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type.
func (b *CommitBuilder) BuildCommit() domain.Commit {
	return domain.Commit{
		Message: b.message,
		Author: domain.Author{
			Login:      b.login,
			ProfileURL: b.profileURL,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.message = "Add blobfox emoji"
	b.login = "contributor"
	b.profileURL = "https://github.com/contributor"
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	return &CommitBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		message:     b.message,
		login:       b.login,
		profileURL:  b.profileURL,
	}
}
