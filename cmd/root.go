package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	// Global flags
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "emojitools",
	Short: "Release automation for the emoji pack",
	Long: `Automation for releasing the emoji pack:

- build Markdown release notes by diffing the current tag against the
  previous release and stage every changed emoji for packaging
- batch-convert the SVG sources to PNG at a configurable size`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
		logger.SetFormatter(&logger.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
