package application

import (
	"context"
	"errors"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/olivvybee/emojitools/config"
	"github.com/olivvybee/emojitools/domain"
)

// Output names consumed by later workflow steps.
const (
	outputReleaseNotes  = "releaseNotes"
	outputHasSVGChanges = "hasSvgChanges"
)

// AssetStager copies changed asset files into a staging directory.
type AssetStager interface {
	Stage(paths []string, destDir string) error
}

// ReleaseService orchestrates the release-notes pipeline: diff the current
// tag against the previous release, classify changed assets, collect
// contributors, render the Markdown notes, stage the changed files, and emit
// the run outputs. Every step runs once, sequentially; the first error aborts
// the run.
type ReleaseService struct {
	provider domain.ReleaseProvider
	stager   AssetStager
	outputs  domain.OutputSink
	cfg      *config.Config
}

// NewReleaseService creates the service with its collaborators.
func NewReleaseService(
	provider domain.ReleaseProvider,
	stager AssetStager,
	outputs domain.OutputSink,
	cfg *config.Config,
) *ReleaseService {
	return &ReleaseService{
		provider: provider,
		stager:   stager,
		outputs:  outputs,
		cfg:      cfg,
	}
}

// Run executes the pipeline for the release identified by ref (a tag name or
// a fully-qualified refs/tags/ ref).
//
// When no previous non-prerelease release exists there is nothing to compare
// against: the run logs a notice, reports no changes, and succeeds without
// calling the compare endpoint.
func (s *ReleaseService) Run(ctx context.Context, ref string) error {
	headTag := domain.TagFromRef(ref)
	tag := domain.NormalizeTag(ref)

	logger.Infof("Building release notes for %s", tag)

	previous, err := s.provider.PreviousRelease(ctx, tag)
	if errors.Is(err, domain.ErrNoPreviousRelease) {
		logger.Info("No previous release found; skipping comparison")
		s.outputs.SetOutput(outputReleaseNotes, "")
		s.outputs.SetOutput(outputHasSVGChanges, "false")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Infof("Comparing %s...%s", previous, headTag)
	report, err := s.provider.Compare(ctx, previous, headTag)
	if err != nil {
		return err
	}

	ext := s.cfg.Release.AssetExtension
	assets := domain.ClassifyAssets(report.Files, ext)
	contributors := domain.CollectContributors(report.Commits, s.cfg.Release.ExcludedAuthor)

	messages := make([]string, 0, len(report.Commits))
	for _, c := range report.Commits {
		messages = append(messages, c.Message)
	}

	notes := domain.BuildReleaseNotes(domain.NotesInput{
		Owner:          s.cfg.Release.Owner,
		Repo:           s.cfg.Release.Repo,
		Tag:            tag,
		CommitMessages: messages,
		AssetChanges:   assets,
		Contributors:   contributors,
	})

	if paths := domain.ChangedAssetPaths(report.Files, ext); len(paths) > 0 {
		destDir := domain.StagingDirName(tag)
		logger.Infof("Staging %d changed assets into %s", len(paths), destDir)
		if stageErr := s.stager.Stage(paths, destDir); stageErr != nil {
			return stageErr
		}
	}

	s.outputs.SetOutput(outputReleaseNotes, notes)
	s.outputs.SetOutput(outputHasSVGChanges, strconv.FormatBool(len(assets) > 0))

	logger.Infof(
		"Release notes ready: %d new, %d updated, %d contributors, %d commits",
		countKind(assets, domain.KindAdded),
		countKind(assets, domain.KindUpdated),
		len(contributors),
		len(report.Commits),
	)
	return nil
}

func countKind(assets []domain.AssetChange, kind domain.ChangeKind) int {
	count := 0
	for _, a := range assets {
		if a.Kind == kind {
			count++
		}
	}
	return count
}
