package domain

import (
	"fmt"
	"strings"
)

// NotesInput carries everything needed to render a release notes document.
// All slices keep the order their producers established.
type NotesInput struct {
	Owner          string
	Repo           string
	Tag            string // normalized
	CommitMessages []string
	AssetChanges   []AssetChange
	Contributors   []Contributor
}

// BuildReleaseNotes renders the Markdown release notes document.
//
// The output is deterministic: the same input always yields byte-identical
// Markdown. Downstream publishing depends on the exact structure, in
// particular on empty subsections being omitted entirely rather than rendered
// with no bullets.
//
// Document layout, top to bottom:
//   - "## Changed emoji" with a preview image plus "### New" / "### Updated"
//     bullet lists, or the literal "None." when nothing changed;
//   - a fixed usage-instructions line;
//   - "## Contributors to this release" (omitted when empty);
//   - a collapsible list of every commit's subject line.
func BuildReleaseNotes(in NotesInput) string {
	var blocks []string

	blocks = append(blocks, "## Changed emoji")

	if len(in.AssetChanges) == 0 {
		blocks = append(blocks, "None.")
	} else {
		blocks = append(blocks, fmt.Sprintf(
			"![Preview of the changed emoji](%s)",
			PreviewImageURL(in.Owner, in.Repo, in.Tag),
		))
		if added := assetBullets(in.AssetChanges, KindAdded); added != "" {
			blocks = append(blocks, "### New", added)
		}
		if updated := assetBullets(in.AssetChanges, KindUpdated); updated != "" {
			blocks = append(blocks, "### Updated", updated)
		}
	}

	blocks = append(blocks, fmt.Sprintf(
		"To add these emoji to your server, see the [usage instructions](https://github.com/%s/%s#usage).",
		in.Owner, in.Repo,
	))

	if len(in.Contributors) > 0 {
		blocks = append(blocks,
			"## Contributors to this release",
			contributorBullets(in.Contributors),
		)
	}

	blocks = append(blocks, allChangesSection(in.CommitMessages))

	return strings.Join(blocks, "\n\n") + "\n"
}

func assetBullets(changes []AssetChange, kind ChangeKind) string {
	var lines []string
	for _, c := range changes {
		if c.Kind == kind {
			lines = append(lines, fmt.Sprintf("- `%s`", c.Name))
		}
	}
	return strings.Join(lines, "\n")
}

func contributorBullets(contributors []Contributor) string {
	lines := make([]string, 0, len(contributors))
	for _, c := range contributors {
		lines = append(lines, fmt.Sprintf("- [@%s](%s)", c.Handle, c.ProfileURL))
	}
	return strings.Join(lines, "\n")
}

// allChangesSection renders the collapsible commit log. Only the first line
// of each commit message is kept; merge commits are not filtered.
func allChangesSection(messages []string) string {
	var b strings.Builder
	b.WriteString("<details>\n<summary>All changes in this release</summary>\n")

	if len(messages) > 0 {
		b.WriteString("\n")
		for i, msg := range messages {
			subject, _, _ := strings.Cut(msg, "\n")
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("- " + subject)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n</details>")
	return b.String()
}
