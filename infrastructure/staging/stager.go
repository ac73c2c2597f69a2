// Package staging copies changed asset files into a flat directory for
// downstream packaging.
package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stager copies repository-relative asset files into a staging directory,
// flattening any directory structure to the base file name.
type Stager struct {
	// SourceRoot is the checkout root the diff paths are relative to.
	// Empty means the current working directory.
	SourceRoot string
}

// Stage creates destDir (idempotent, recursive) and copies every path into
// it. The first failed copy aborts the run; files already copied stay on disk.
func (s *Stager) Stage(paths []string, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory %q: %w", destDir, err)
	}

	for _, p := range paths {
		src := filepath.Join(s.SourceRoot, p)
		dst := filepath.Join(destDir, filepath.Base(p))
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dst, err)
	}

	if _, copyErr := io.Copy(out, in); copyErr != nil {
		out.Close()
		return fmt.Errorf("failed to copy %q to %q: %w", src, dst, copyErr)
	}

	if closeErr := out.Close(); closeErr != nil {
		return fmt.Errorf("failed to finish writing %q: %w", dst, closeErr)
	}
	return nil
}
