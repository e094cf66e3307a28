package pipeline

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/mhartmer/certforge/pkg/errors"
	"github.com/mhartmer/certforge/pkg/style"
)

// targetDimensions scales the layout's base-DPI dimensions to the output
// DPI, rounding each axis independently.
func targetDimensions(l style.LayoutConfig, dpi int) (w, h int) {
	scale := float64(dpi) / float64(style.BaseDPI)
	return int(math.Round(float64(l.Width) * scale)),
		int(math.Round(float64(l.Height) * scale))
}

// convert resamples the raster to the output DPI's target dimensions and
// encodes it in the configured format. Resampling uses a cubic filter and
// only happens when the current dimensions differ from the target, so
// converting at the base DPI is a pure encode. An unsupported format is a
// generation failure.
func convert(img image.Image, l style.LayoutConfig, out OutputConfig) ([]byte, error) {
	targetW, targetH := targetDimensions(l, out.DPI)

	b := img.Bounds()
	if b.Dx() != targetW || b.Dy() != targetH {
		if out.PreserveAspect {
			img = imaging.Fit(img, targetW, targetH, imaging.CatmullRom)
		} else {
			img = imaging.Resize(img, targetW, targetH, imaging.CatmullRom)
		}
	}

	var buf bytes.Buffer
	switch out.Format {
	case FormatJPG, FormatJPEG:
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(out.Quality)); err != nil {
			return nil, errors.WrapGeneration(err, "encode jpeg")
		}
	case FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, errors.WrapGeneration(err, "encode png")
		}
	default:
		return nil, errors.NewGeneration("unsupported output format %q", out.Format)
	}
	return buf.Bytes(), nil
}
