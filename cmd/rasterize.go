package cmd

import (
	"github.com/spf13/cobra"

	"github.com/olivvybee/emojitools/application"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	rasterDirs []string
	rasterSize int
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rasterizeCmd = &cobra.Command{
	Use:   "rasterize",
	Short: "Convert the vector emoji to PNG",
	Long: `Convert every SVG under the selected top-level directories into a PNG at
the configured pixel width, mirroring the directory layout under the png/
output root.

By default every eligible top-level directory is processed; directories named
in .pngignore and names starting with "." or "_" are skipped. Conversions run
strictly one at a time and the first failure stops the batch.`,
	RunE: runRasterize,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rasterizeCmd.Flags().StringArrayVarP(&rasterDirs, "directories", "d", nil,
		"Directories to process (repeatable; default: all eligible)")
	rasterizeCmd.Flags().IntVarP(&rasterSize, "size", "s", 0,
		"Output width in pixels (default from config)")
	rootCmd.AddCommand(rasterizeCmd)
}

func runRasterize(_ *cobra.Command, _ []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(svc *application.ConvertService) error {
		return svc.Run(".", rasterDirs, rasterSize)
	})
}
