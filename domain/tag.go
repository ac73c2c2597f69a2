package domain

import (
	"fmt"
	"strings"
)

// TagFromRef strips the "refs/tags/" prefix from a fully-qualified tag ref,
// yielding the tag name the hosting service understands in compare calls.
func TagFromRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/tags/")
}

// NormalizeTag returns the bare tag name used in URLs and directory names:
// the ref prefix and any leading "v" are stripped.
func NormalizeTag(ref string) string {
	return strings.TrimPrefix(TagFromRef(ref), "v")
}

// StagingDirName returns the directory changed assets are copied into for
// downstream packaging.
func StagingDirName(tag string) string {
	return "updates-" + tag
}

// PreviewImageURL returns the raw URL of the pre-rendered preview image for a
// release. The tag must already be normalized.
func PreviewImageURL(owner, repo, tag string) string {
	return fmt.Sprintf(
		"https://raw.githubusercontent.com/%s/%s/%s/previews/%s.png",
		owner, repo, tag, tag,
	)
}
