package domain

// ChangeKind classifies how an asset changed between two releases.
type ChangeKind string

const (
	KindAdded   ChangeKind = "added"
	KindUpdated ChangeKind = "updated"
)

// File-change statuses as reported by the hosting service's compare endpoint.
const (
	StatusAdded   = "added"
	StatusRemoved = "removed"
)

// AssetChange represents one emoji asset that changed between two releases.
type AssetChange struct {
	Name string // file name without directory or extension
	Kind ChangeKind
}

// Author identifies a commit author on the hosting service.
// Login is empty when the service could not resolve the author to an account.
type Author struct {
	Login      string
	ProfileURL string
}

// Commit is a single commit reported by the compare endpoint.
type Commit struct {
	Message string
	Author  Author
}

// FileChange is a file-level diff entry reported by the compare endpoint.
type FileChange struct {
	Path         string
	PreviousPath string // set for renames; empty otherwise
	Status       string // "added", "modified", "removed", "renamed", ...
}

// ChangeReport bundles everything the compare endpoint reports between two
// tags, in the order the service returned it.
type ChangeReport struct {
	Commits []Commit
	Files   []FileChange
}

// Contributor is one distinct commit author credited in the release notes.
type Contributor struct {
	Handle     string
	ProfileURL string
}

// ConversionJob describes one vector image to rasterize.
type ConversionJob struct {
	SourcePath        string
	DestinationPath   string
	TargetWidthPixels int
}
