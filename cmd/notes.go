package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/olivvybee/emojitools/application"
	"github.com/olivvybee/emojitools/config"
	"github.com/olivvybee/emojitools/infrastructure/gitrepo"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var tagRef string

//nolint:gochecknoglobals // required by cobra CLI pattern
var notesCmd = &cobra.Command{
	Use:   "release-notes",
	Short: "Build release notes and stage changed emoji for the current tag",
	Long: `Compare the current tag against the most recent non-prerelease release,
build the Markdown release notes, and copy every changed emoji asset into an
updates-<tag> directory for packaging.

The tag is taken from --tag, then the GITHUB_REF environment variable, then
the tag pointing at HEAD of the local checkout. Outputs (releaseNotes,
hasSvgChanges) are written for later workflow steps.`,
	RunE: runNotes,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	notesCmd.Flags().StringVarP(&tagRef, "tag", "t", "",
		"Tag being released (default: GITHUB_REF or the tag at HEAD)")
	rootCmd.AddCommand(notesCmd)
}

func runNotes(_ *cobra.Command, _ []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	// Fail on missing credentials before any work begins.
	if invokeErr := container.Invoke(func(cfg *config.Config) error {
		return cfg.ValidateRelease()
	}); invokeErr != nil {
		return invokeErr
	}

	ref := tagRef
	if ref == "" {
		ref = os.Getenv("GITHUB_REF")
	}
	if ref == "" {
		ref, err = gitrepo.ResolveHeadTag(".")
		if err != nil {
			return err
		}
	}

	return container.Invoke(func(svc *application.ReleaseService) error {
		return svc.Run(context.Background(), ref)
	})
}
