package preproc

import (
	"rescribe.xyz/micrograph"
)

// newImage builds a CalibratedImage from rows of samples
func newImage(rows [][]float64) *micrograph.CalibratedImage {
	ci := &micrograph.CalibratedImage{
		Width:     len(rows[0]),
		Height:    len(rows),
		PixelSize: micrograph.Isotropic(1e-9),
	}
	for _, r := range rows {
		ci.Pix = append(ci.Pix, r...)
	}
	return ci
}

func imgsequal(img1, img2 *micrograph.CalibratedImage) bool {
	if img1.Width != img2.Width || img1.Height != img2.Height {
		return false
	}
	for i := range img1.Pix {
		if img1.Pix[i] != img2.Pix[i] {
			return false
		}
	}
	return true
}
