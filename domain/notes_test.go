package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/olivvybee/emojitools/domain"
)

func TestBuildReleaseNotes(t *testing.T) {
	t.Parallel()

	t.Run("should render the full document byte-identically", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{
			Owner: "olivvybee",
			Repo:  "emojis",
			Tag:   "2.4.0",
			CommitMessages: []string{
				"Add blobfox\n\ndetails that should not appear",
				"Update blobcat",
			},
			AssetChanges: []domain.AssetChange{
				{Name: "blobfox", Kind: domain.KindAdded},
				{Name: "blobcat", Kind: domain.KindUpdated},
			},
			Contributors: []domain.Contributor{
				{Handle: "alice", ProfileURL: "https://github.com/alice"},
			},
		}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		expected := strings.Join([]string{
			"## Changed emoji",
			"",
			"![Preview of the changed emoji](https://raw.githubusercontent.com/olivvybee/emojis/2.4.0/previews/2.4.0.png)",
			"",
			"### New",
			"",
			"- `blobfox`",
			"",
			"### Updated",
			"",
			"- `blobcat`",
			"",
			"To add these emoji to your server, see the [usage instructions](https://github.com/olivvybee/emojis#usage).",
			"",
			"## Contributors to this release",
			"",
			"- [@alice](https://github.com/alice)",
			"",
			"<details>",
			"<summary>All changes in this release</summary>",
			"",
			"- Add blobfox",
			"- Update blobcat",
			"",
			"</details>",
			"",
		}, "\n")
		assert.Equal(t, expected, notes)
	})

	t.Run("should render None. when no assets changed", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{
			Owner:          "olivvybee",
			Repo:           "emojis",
			Tag:            "2.4.0",
			CommitMessages: []string{"Tweak build scripts"},
		}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.Contains(t, notes, "## Changed emoji\n\nNone.\n")
		assert.NotContains(t, notes, "![Preview")
		assert.NotContains(t, notes, "### New")
		assert.NotContains(t, notes, "### Updated")
	})

	t.Run("should omit the New subsection entirely when nothing was added", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{
			Owner: "olivvybee",
			Repo:  "emojis",
			Tag:   "2.4.0",
			AssetChanges: []domain.AssetChange{
				{Name: "blobcat", Kind: domain.KindUpdated},
				{Name: "blobdog", Kind: domain.KindUpdated},
			},
		}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.NotContains(t, notes, "### New")
		assert.Contains(t, notes, "### Updated\n\n- `blobcat`\n- `blobdog`")
	})

	t.Run("should omit the Updated subsection entirely when nothing was updated", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{
			Owner: "olivvybee",
			Repo:  "emojis",
			Tag:   "2.4.0",
			AssetChanges: []domain.AssetChange{
				{Name: "blobfox", Kind: domain.KindAdded},
			},
		}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.Contains(t, notes, "### New\n\n- `blobfox`")
		assert.NotContains(t, notes, "### Updated")
	})

	t.Run("should omit the contributors section when there are none", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{Owner: "olivvybee", Repo: "emojis", Tag: "2.4.0"}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.NotContains(t, notes, "## Contributors to this release")
	})

	t.Run("should keep only the first line of each commit message", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{
			Owner:          "olivvybee",
			Repo:           "emojis",
			Tag:            "2.4.0",
			CommitMessages: []string{"Fix bug\n\nlonger body", "Add feature"},
		}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.Contains(t, notes, "- Fix bug\n- Add feature")
		assert.NotContains(t, notes, "longer body")
	})

	t.Run("should render an empty collapsible section for zero commits", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{Owner: "olivvybee", Repo: "emojis", Tag: "2.4.0"}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.Contains(t, notes, "<details>\n<summary>All changes in this release</summary>\n\n</details>")
	})

	t.Run("should produce the expected Markdown heading structure", func(t *testing.T) {
		t.Parallel()

		// given
		in := domain.NotesInput{
			Owner: "olivvybee",
			Repo:  "emojis",
			Tag:   "2.4.0",
			AssetChanges: []domain.AssetChange{
				{Name: "blobfox", Kind: domain.KindAdded},
				{Name: "blobcat", Kind: domain.KindUpdated},
			},
			Contributors: []domain.Contributor{
				{Handle: "alice", ProfileURL: "https://github.com/alice"},
			},
		}

		// when
		notes := domain.BuildReleaseNotes(in)

		// then
		assert.Equal(t, []string{
			"h2:Changed emoji",
			"h3:New",
			"h3:Updated",
			"h2:Contributors to this release",
		}, parseHeadings(t, []byte(notes)))
	})
}

// parseHeadings runs the rendered document through a real Markdown parser and
// returns the headings it found, as "h<level>:<text>".
func parseHeadings(t *testing.T, source []byte) []string {
	t.Helper()

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, fmt.Sprintf("h%d:%s", h.Level, h.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	return headings
}
