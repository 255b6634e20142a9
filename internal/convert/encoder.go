// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package convert

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/tiff"
	"rescribe.xyz/micrograph"
	"rescribe.xyz/micrograph/preproc"
)

// Encoder writes a calibrated image in some output format. Suffix is
// added to the input file name, less its extension, to name the
// output.
type Encoder interface {
	Encode(w io.Writer, ci *micrograph.CalibratedImage) error
	Suffix() string
}

// PNGEncoder writes 8 bit PNGs with a scale bar drawn on them
type PNGEncoder struct {
	Median    int     // median filter window size, or 0 for no filtering
	Downscale float64 // resampling factor in (0, 1], or 0 to keep the size
	Fonts     *micrograph.FontResolver
}

func (e PNGEncoder) Suffix() string {
	return "_scalebar.png"
}

// Render filters, converts and resamples ci as configured, and draws
// a scale bar on the result
func (e PNGEncoder) Render(ci *micrograph.CalibratedImage) (*image.Gray, micrograph.ScaleBar, error) {
	if e.Median > 0 {
		ci = preproc.Median(ci, e.Median)
	}
	img := ci.Gray()

	px := ci.PixelSize
	if e.Downscale != 0 && e.Downscale != 1 {
		small, err := micrograph.Downscale(img, e.Downscale)
		if err != nil {
			return nil, micrograph.ScaleBar{}, err
		}
		px = px.Scale(e.Downscale)
		// resampling blurs the extremes, so stretch the intensities again
		sci, err := micrograph.NewCalibratedImage(small, px)
		if err != nil {
			return nil, micrograph.ScaleBar{}, err
		}
		img = sci.Gray()
	}

	sb, err := micrograph.Annotate(img, px, e.Fonts)
	if err != nil {
		return nil, sb, err
	}
	return img, sb, nil
}

func (e PNGEncoder) Encode(w io.Writer, ci *micrograph.CalibratedImage) error {
	img, _, err := e.Render(ci)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// TIFFEncoder writes 16 bit greyscale TIFFs
type TIFFEncoder struct{}

func (e TIFFEncoder) Suffix() string {
	return ".tiff"
}

func (e TIFFEncoder) Encode(w io.Writer, ci *micrograph.CalibratedImage) error {
	return tiff.Encode(w, ci.Gray16(), &tiff.Options{Compression: tiff.Deflate})
}
