package application

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/olivvybee/emojitools/config"
	"github.com/olivvybee/emojitools/domain"
)

// ConvertService runs the vector-to-raster conversion pipeline: resolve the
// directories to process, plan one job per vector file, then render the jobs
// strictly one at a time. The first render failure aborts the batch; images
// already written stay on disk.
type ConvertService struct {
	renderer domain.Renderer
	cfg      *config.Config
}

// NewConvertService creates the service with its collaborators.
func NewConvertService(renderer domain.Renderer, cfg *config.Config) *ConvertService {
	return &ConvertService{renderer: renderer, cfg: cfg}
}

// Run converts every vector image under the selected top-level directories of
// root. When requested is empty, all eligible directories are processed; an
// explicitly requested directory outside the eligible set is an error. A
// size of zero or less falls back to the configured default width.
func (s *ConvertService) Run(root string, requested []string, size int) error {
	if size <= 0 {
		size = s.cfg.Raster.Size
	}

	dirs, err := s.ResolveDirectories(root, requested)
	if err != nil {
		return err
	}

	var jobs []domain.ConversionJob
	for _, dir := range dirs {
		planned, planErr := s.planDirectory(root, dir, size)
		if planErr != nil {
			return planErr
		}
		jobs = append(jobs, planned...)
	}

	if len(jobs) == 0 {
		logger.Info("No vector images found; nothing to convert")
		return nil
	}

	logger.Infof("Converting %d images at %dpx", len(jobs), size)

	bar := progressbar.Default(int64(len(jobs)), "converting")
	for _, job := range jobs {
		if renderErr := s.renderer.Render(job); renderErr != nil {
			return renderErr
		}
		logger.Infof(
			"Converted %s -> %s",
			filepath.Base(job.SourcePath), filepath.Base(job.DestinationPath),
		)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return nil
}

// ResolveDirectories returns the top-level directories to process, resolved
// once at startup. The default set is every directory under root except those
// named in the ignore file, names starting with "." or "_", and the raster
// output root itself. Requested names bypass resolution but are validated
// against that same eligible set.
func (s *ConvertService) ResolveDirectories(root string, requested []string) ([]string, error) {
	eligible, err := s.eligibleDirectories(root)
	if err != nil {
		return nil, err
	}

	if len(requested) == 0 {
		return eligible, nil
	}

	allowed := make(map[string]bool, len(eligible))
	for _, dir := range eligible {
		allowed[dir] = true
	}
	for _, dir := range requested {
		if !allowed[dir] {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDirectory, dir)
		}
	}
	return requested, nil
}

func (s *ConvertService) eligibleDirectories(root string) ([]string, error) {
	ignored, err := s.loadIgnoreList(root)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", root, err)
	}

	var dirs []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		if name == s.cfg.Raster.OutputDir || ignored[name] {
			continue
		}
		dirs = append(dirs, name)
	}
	return dirs, nil
}

// loadIgnoreList reads the ignore file (one directory name per line, "#"
// comments allowed). A missing file means nothing is ignored.
func (s *ConvertService) loadIgnoreList(root string) (map[string]bool, error) {
	f, err := os.Open(filepath.Join(root, s.cfg.Raster.IgnoreFile))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	defer f.Close()

	ignored := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ignored[line] = true
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", scanErr)
	}
	return ignored, nil
}

// planDirectory lists the vector files directly under dir and produces one
// job per file, mirroring dir under the output root with the extension
// swapped. The output directory is created here so the render loop only
// writes files.
func (s *ConvertService) planDirectory(root, dir string, size int) ([]domain.ConversionJob, error) {
	outDir := filepath.Join(root, s.cfg.Raster.OutputDir, dir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	entries, err := os.ReadDir(filepath.Join(root, dir))
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", dir, err)
	}

	ext := s.cfg.Release.AssetExtension
	var jobs []domain.ConversionJob
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		jobs = append(jobs, domain.ConversionJob{
			SourcePath:        filepath.Join(root, dir, name),
			DestinationPath:   filepath.Join(outDir, strings.TrimSuffix(name, ext)+".png"),
			TargetWidthPixels: size,
		})
	}
	return jobs, nil
}
