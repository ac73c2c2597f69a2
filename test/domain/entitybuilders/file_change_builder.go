package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/olivvybee/emojitools/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FileChangeBuilder helps create test file-change entries with a fluent interface.
type FileChangeBuilder struct {
	*testkit.BaseBuilder
	path         string
	previousPath string
	status       string
}

// NewFileChangeBuilder creates a new file-change builder with sensible defaults.
func NewFileChangeBuilder() *FileChangeBuilder {
	return &FileChangeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "blobs/blobfox.svg",
		status:      domain.StatusAdded,
	}
}

// WithPath sets the file path.
func (b *FileChangeBuilder) WithPath(path string) *FileChangeBuilder {
	b.path = path
	return b
}

// WithPreviousPath sets the pre-rename path.
func (b *FileChangeBuilder) WithPreviousPath(path string) *FileChangeBuilder {
	b.previousPath = path
	return b
}

// WithStatus sets the upstream diff status.
func (b *FileChangeBuilder) WithStatus(status string) *FileChangeBuilder {
	b.status = status
	return b
}

// Build creates the file change (satisfies testkit.Builder interface).
func (b *FileChangeBuilder) Build() interface{} {
	return b.BuildFileChange()
}

// BuildFileChange creates the file change with a concrete return type.
func (b *FileChangeBuilder) BuildFileChange() domain.FileChange {
	return domain.FileChange{
		Path:         b.path,
		PreviousPath: b.previousPath,
		Status:       b.status,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileChangeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "blobs/blobfox.svg"
	b.previousPath = ""
	b.status = domain.StatusAdded
	return b
}

// Clone creates a deep copy of the FileChangeBuilder.
func (b *FileChangeBuilder) Clone() testkit.Builder {
	return &FileChangeBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:         b.path,
		previousPath: b.previousPath,
		status:       b.status,
	}
}
