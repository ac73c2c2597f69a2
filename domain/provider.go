package domain

import "context"

// ReleaseProvider abstracts the repository hosting service used to diff two
// releases. The single implementation talks to the GitHub REST API; the
// interface exists so the pipeline can be exercised without the network.
type ReleaseProvider interface {
	// PreviousRelease returns the tag of the most recent published,
	// non-prerelease release other than currentTag (normalized form).
	// Returns ErrNoPreviousRelease when no such release exists.
	PreviousRelease(ctx context.Context, currentTag string) (string, error)

	// Compare returns the commits and file-level changes between two refs,
	// in the order reported by the service.
	Compare(ctx context.Context, base, head string) (*ChangeReport, error)
}

// OutputSink receives the key-value outputs of a release-notes run.
type OutputSink interface {
	SetOutput(name, value string)
}

// Renderer converts one vector image into a raster image on disk.
type Renderer interface {
	Render(job ConversionJob) error
}
