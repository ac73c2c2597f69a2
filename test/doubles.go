// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations — no mock
// frameworks.
package testdoubles

import (
	"context"
	"fmt"
	"strings"

	"github.com/olivvybee/emojitools/domain"
)

// ---------------------------------------------------------------------------
// SpyReleaseProvider
// ---------------------------------------------------------------------------

// SpyReleaseProvider implements domain.ReleaseProvider as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpyReleaseProvider struct {
	// --- PreviousRelease ---
	PreviousTag string
	PreviousErr error
	// spy: current tags that were requested
	PreviousCalls []string

	// --- Compare ---
	Report     *domain.ChangeReport
	CompareErr error
	// spy: "base...head" ranges that were compared
	ComparedRanges []string
}

var _ domain.ReleaseProvider = (*SpyReleaseProvider)(nil)

func (p *SpyReleaseProvider) PreviousRelease(
	_ context.Context,
	currentTag string,
) (string, error) {
	p.PreviousCalls = append(p.PreviousCalls, currentTag)
	return p.PreviousTag, p.PreviousErr
}

func (p *SpyReleaseProvider) Compare(
	_ context.Context,
	base, head string,
) (*domain.ChangeReport, error) {
	p.ComparedRanges = append(p.ComparedRanges, base+"..."+head)
	if p.CompareErr != nil {
		return nil, p.CompareErr
	}
	if p.Report != nil {
		return p.Report, nil
	}
	return &domain.ChangeReport{}, nil
}

// ---------------------------------------------------------------------------
// SpyOutputSink
// ---------------------------------------------------------------------------

// SpyOutputSink records every output set on it, preserving set order.
type SpyOutputSink struct {
	Outputs map[string]string
	// spy: names in the order they were set
	Order []string
}

var _ domain.OutputSink = (*SpyOutputSink)(nil)

func (s *SpyOutputSink) SetOutput(name, value string) {
	if s.Outputs == nil {
		s.Outputs = make(map[string]string)
	}
	s.Outputs[name] = value
	s.Order = append(s.Order, name)
}

// ---------------------------------------------------------------------------
// SpyStager
// ---------------------------------------------------------------------------

// SpyStager records staging requests without touching the filesystem.
type SpyStager struct {
	Err error
	// spy: inputs received
	StagedPaths []string
	DestDirs    []string
}

func (s *SpyStager) Stage(paths []string, destDir string) error {
	s.StagedPaths = append(s.StagedPaths, paths...)
	s.DestDirs = append(s.DestDirs, destDir)
	return s.Err
}

// ---------------------------------------------------------------------------
// StubRenderer
// ---------------------------------------------------------------------------

// StubRenderer implements domain.Renderer without rendering anything. Set
// FailOnSuffix to make the job whose source path ends in that suffix fail.
type StubRenderer struct {
	FailOnSuffix string
	// spy: jobs successfully "rendered", in order
	Rendered []domain.ConversionJob
}

var _ domain.Renderer = (*StubRenderer)(nil)

func (r *StubRenderer) Render(job domain.ConversionJob) error {
	if r.FailOnSuffix != "" && strings.HasSuffix(job.SourcePath, r.FailOnSuffix) {
		return fmt.Errorf("%w: %s", domain.ErrRenderFailure, job.SourcePath)
	}
	r.Rendered = append(r.Rendered, job)
	return nil
}
