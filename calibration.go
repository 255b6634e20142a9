// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

var ErrInvalidPixelSize = errors.New("pixel size must be finite and positive")

// PixelSize is the physical size of one pixel, in meters. Detectors
// can report a different width and height, so both are kept.
type PixelSize struct {
	X, Y float64
}

// Isotropic returns a PixelSize with the same width and height
func Isotropic(m float64) PixelSize {
	return PixelSize{X: m, Y: m}
}

func (p PixelSize) Isotropic() bool {
	return p.X == p.Y
}

// Validate checks that both dimensions are usable lengths
func (p PixelSize) Validate() error {
	if !validLength(p.X) || !validLength(p.Y) {
		return fmt.Errorf("%w: got %g x %g m", ErrInvalidPixelSize, p.X, p.Y)
	}
	return nil
}

// Scale returns the pixel size after the image has been resampled
// by factor, so halving an image doubles its pixel size.
func (p PixelSize) Scale(factor float64) PixelSize {
	return PixelSize{X: p.X / factor, Y: p.Y / factor}
}

func (p PixelSize) String() string {
	if p.Isotropic() {
		return fmt.Sprintf("%g m", p.X)
	}
	return fmt.Sprintf("%g x %g m", p.X, p.Y)
}

// CalibratedImage is a single frame of intensity samples, stored row
// by row, together with the size of its pixels.
type CalibratedImage struct {
	Width, Height int
	Pix           []float64
	PixelSize     PixelSize
}

// NewCalibratedImage copies the intensities of img into a new
// CalibratedImage. Samples are read at 16 bit depth so that
// 16 bit detector data keeps its full range.
func NewCalibratedImage(img image.Image, px PixelSize) (*CalibratedImage, error) {
	err := px.Validate()
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	ci := &CalibratedImage{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Pix:       make([]float64, b.Dx()*b.Dy()),
		PixelSize: px,
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ci.Pix[i] = float64(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
			i++
		}
	}
	return ci, nil
}

// At returns the sample at x, y
func (ci *CalibratedImage) At(x, y int) float64 {
	return ci.Pix[y*ci.Width+x]
}

// MinMax returns the smallest and largest samples
func (ci *CalibratedImage) MinMax() (float64, float64) {
	if len(ci.Pix) == 0 {
		return 0, 0
	}
	min, max := ci.Pix[0], ci.Pix[0]
	for _, v := range ci.Pix[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Gray stretches the intensity range of the image linearly onto
// 0-255. An image with a single intensity becomes black.
func (ci *CalibratedImage) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ci.Width, ci.Height))
	min, max := ci.MinMax()
	span := max - min
	if span == 0 {
		return img
	}
	for i, v := range ci.Pix {
		img.Pix[i] = uint8(math.Round((v - min) / span * 255))
	}
	return img
}

// Gray16 casts each sample to 16 bits, dropping any fractional part.
// Samples outside 0-65535 are clamped rather than wrapped.
func (ci *CalibratedImage) Gray16() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, ci.Width, ci.Height))
	for y := 0; y < ci.Height; y++ {
		for x := 0; x < ci.Width; x++ {
			v := ci.At(x, y)
			switch {
			case math.IsNaN(v) || v < 0:
				v = 0
			case v > math.MaxUint16:
				v = math.MaxUint16
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		}
	}
	return img
}

// Downscale resamples img by factor, which must be in (0, 1], using
// a Lanczos filter so that fine structure is anti-aliased rather than
// dropped.
func Downscale(img image.Image, factor float64) (image.Image, error) {
	if !(factor > 0 && factor <= 1) {
		return nil, fmt.Errorf("downscale factor must be in (0, 1], got %g", factor)
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("downscaling %dx%d by %g leaves no pixels", b.Dx(), b.Dy(), factor)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}
