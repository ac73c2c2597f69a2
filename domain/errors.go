package domain

import "errors"

var (
	// ErrUpstreamUnavailable wraps any failure reported by the hosting
	// service (network, auth, rate-limit). Never retried.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrNoPreviousRelease signals that no earlier published, non-prerelease
	// release exists to compare against.
	ErrNoPreviousRelease = errors.New("no previous release found")

	// ErrRenderFailure wraps errors reported by the rendering engine for a
	// single vector image.
	ErrRenderFailure = errors.New("render failed")

	// ErrMissingToken means the hosting-service authentication token was not
	// configured. Checked eagerly, before any work begins.
	ErrMissingToken = errors.New("authentication token is not set")

	// ErrNoTag means no release tag could be resolved from flags, the
	// environment, or the local checkout.
	ErrNoTag = errors.New("no release tag could be resolved")

	// ErrUnknownDirectory means an explicitly requested directory is not in
	// the set of eligible top-level directories.
	ErrUnknownDirectory = errors.New("unknown directory")
)
