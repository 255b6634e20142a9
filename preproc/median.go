package preproc

import (
	"rescribe.xyz/micrograph"
)

// DefaultMedianSize is the window size which matches a 3x3 square
// footprint
const DefaultMedianSize = 3

// Median replaces each sample with the median of the size x size
// window around it, which removes shot noise while keeping edges
// sharp. An even size is increased by one so the window stays
// centred. Near the edges the window is filled by repeating the
// nearest edge sample. The calibration is carried over unchanged.
func Median(ci *micrograph.CalibratedImage, size int) *micrograph.CalibratedImage {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}

	new := &micrograph.CalibratedImage{
		Width:     ci.Width,
		Height:    ci.Height,
		Pix:       make([]float64, len(ci.Pix)),
		PixelSize: ci.PixelSize,
	}

	window := make([]float64, 0, size*size)
	for y := 0; y < ci.Height; y++ {
		for x := 0; x < ci.Width; x++ {
			window = surrounding(ci, x, y, size, window)
			new.Pix[y*ci.Width+x] = median(window)
		}
	}

	return new
}
