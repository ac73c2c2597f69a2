package github

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gh "github.com/google/go-github/v69/github"
	"golang.org/x/mod/semver"

	"github.com/olivvybee/emojitools/domain"
)

const perPage = 100

// Provider implements domain.ReleaseProvider on the GitHub REST API.
type Provider struct {
	owner  string
	repo   string
	client *gh.Client
}

// New creates a provider for one repository, authenticated with the given token.
func New(owner, repo, token string) *Provider {
	return &Provider{
		owner:  owner,
		repo:   repo,
		client: gh.NewClient(nil).WithAuthToken(token),
	}
}

var _ domain.ReleaseProvider = (*Provider)(nil)

// PreviousRelease returns the tag of the most recent published,
// non-prerelease release other than the tag currently being released.
// Semver-valid tags are ranked highest-first; anything else falls back to
// lexical order.
func (p *Provider) PreviousRelease(ctx context.Context, currentTag string) (string, error) {
	var candidates []string
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		releases, resp, err := p.client.Repositories.ListReleases(ctx, p.owner, p.repo, opts)
		if err != nil {
			return "", fmt.Errorf("%w: failed to list releases: %v", domain.ErrUpstreamUnavailable, err)
		}

		for _, r := range releases {
			if r.GetDraft() || r.GetPrerelease() {
				continue
			}
			if domain.NormalizeTag(r.GetTagName()) == currentTag {
				continue
			}
			candidates = append(candidates, r.GetTagName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if len(candidates) == 0 {
		return "", domain.ErrNoPreviousRelease
	}

	sortVersionsDescending(candidates)
	return candidates[0], nil
}

// Compare returns the commits and file-level changes between two refs, in the
// order reported by the service.
func (p *Provider) Compare(ctx context.Context, base, head string) (*domain.ChangeReport, error) {
	report := &domain.ChangeReport{}
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		cmp, resp, err := p.client.Repositories.CompareCommits(
			ctx, p.owner, p.repo, base, head, opts,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: failed to compare %s...%s: %v",
				domain.ErrUpstreamUnavailable, base, head, err,
			)
		}

		for _, c := range cmp.Commits {
			report.Commits = append(report.Commits, commitFromAPI(c))
		}
		for _, f := range cmp.Files {
			report.Files = append(report.Files, fileFromAPI(f))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return report, nil
}

func commitFromAPI(rc *gh.RepositoryCommit) domain.Commit {
	commit := domain.Commit{Message: rc.GetCommit().GetMessage()}
	if author := rc.GetAuthor(); author != nil {
		commit.Author = domain.Author{
			Login:      author.GetLogin(),
			ProfileURL: author.GetHTMLURL(),
		}
	}
	return commit
}

func fileFromAPI(f *gh.CommitFile) domain.FileChange {
	return domain.FileChange{
		Path:         f.GetFilename(),
		PreviousPath: f.GetPreviousFilename(),
		Status:       f.GetStatus(),
	}
}

// --- version sorting ---

func sortVersionsDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}
		return versions[i] > versions[j]
	})
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
