// Package render rasterizes vector emoji assets to PNG files.
package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/olivvybee/emojitools/domain"
)

// SVGRenderer converts SVG files to PNG at a fixed pixel width, preserving
// the source aspect ratio.
type SVGRenderer struct{}

// NewSVGRenderer creates a renderer.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

var _ domain.Renderer = (*SVGRenderer)(nil)

// Render rasterizes one job's source SVG into a PNG at the target width.
// The output height follows the source viewBox aspect ratio. An existing
// destination file is overwritten.
func (r *SVGRenderer) Render(job domain.ConversionJob) error {
	icon, err := oksvg.ReadIcon(job.SourcePath, oksvg.StrictErrorMode)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRenderFailure, job.SourcePath, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return fmt.Errorf(
			"%w: %s: viewBox has no area",
			domain.ErrRenderFailure, job.SourcePath,
		)
	}

	width := job.TargetWidthPixels
	height := int(float64(width) * icon.ViewBox.H / icon.ViewBox.W)
	if height < 1 {
		height = 1
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	if saveErr := imaging.Save(img, job.DestinationPath); saveErr != nil {
		return fmt.Errorf("failed to write %q: %w", job.DestinationPath, saveErr)
	}

	return nil
}
