package domain

import (
	"path/filepath"
	"strings"
)

// ClassifyAssets filters a file-level diff down to asset files and classifies
// each one. A file is Added iff the service reported its status as "added";
// any other surviving status (modified, renamed, ...) counts as Updated.
// Removed files and non-asset paths are dropped. Diff order is preserved.
func ClassifyAssets(files []FileChange, ext string) []AssetChange {
	var changes []AssetChange
	for _, f := range files {
		if !isAsset(f, ext) {
			continue
		}
		kind := KindUpdated
		if f.Status == StatusAdded {
			kind = KindAdded
		}
		changes = append(changes, AssetChange{
			Name: strings.TrimSuffix(filepath.Base(f.Path), ext),
			Kind: kind,
		})
	}
	return changes
}

// ChangedAssetPaths returns the repository-relative path of every non-removed
// asset file in the diff, in diff order. These are the files the stager copies.
func ChangedAssetPaths(files []FileChange, ext string) []string {
	var paths []string
	for _, f := range files {
		if isAsset(f, ext) {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

func isAsset(f FileChange, ext string) bool {
	return strings.HasSuffix(f.Path, ext) && f.Status != StatusRemoved
}
