package preproc

import (
	"sort"

	"rescribe.xyz/micrograph"
)

// surrounding gets the samples in a size x size window centred on a
// point in the image. Points beyond the image edges take the value of
// the nearest edge sample, so the window is always full.
func surrounding(ci *micrograph.CalibratedImage, x int, y int, size int, s []float64) []float64 {
	step := size / 2

	s = s[:0]
	for yi := y - step; yi <= y+step; yi++ {
		for xi := x - step; xi <= x+step; xi++ {
			s = append(s, ci.At(clamp(xi, ci.Width-1), clamp(yi, ci.Height-1)))
		}
	}
	return s
}

func clamp(i int, limit int) int {
	if i < 0 {
		return 0
	}
	if i > limit {
		return limit
	}
	return i
}

// median sorts s in place and returns its middle value
func median(s []float64) float64 {
	sort.Float64s(s)
	return s[len(s)/2]
}
