// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

// This file contains the proportions used to lay out a scale bar;
// change these if you want bars placed differently on your images.

// Proportions of the image width or height
const (
	barFovFraction    = 6   // bar length is about 1/6 of the field of view
	barInsetX         = 24  // left edge of the bar, from the image width
	barThicknessDiv   = 100 // bar thickness, from the image height
	barOutlineDiv     = 500 // outline stroke, from the image height
	labelFontDiv      = 22  // label font size, from the image width
	barTopNumerator   = 11  // top of the bar is at 11/12 of the image height
	barTopDenominator = 12
)

// barLengths are the lengths, in whichever unit is selected, that a
// scale bar may have. They must stay sorted.
var barLengths = []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}
