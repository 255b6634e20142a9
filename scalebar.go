// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ScaleBar is the layout of a scale bar and its label on an image
type ScaleBar struct {
	Length    float64 // in Unit, one of barLengths
	Unit      Unit
	LengthPx  float64
	Thickness float64 // in pixels
	Outline   int     // stroke width in pixels, used for the bar and the text halo

	// OriginX and OriginY are the top left of the bar before rounding
	OriginX, OriginY float64
	Rect             image.Rectangle

	Label      string
	FontSize   int
	TextOrigin image.Point // top left of the label
}

// NearestBarLength returns the allowed bar length closest to target.
// Where two lengths are equally close the smaller one is returned, and
// targets beyond either end of the list get the end value.
func NearestBarLength(target float64) float64 {
	best := barLengths[0]
	bestDiff := math.Abs(best - target)
	for _, l := range barLengths[1:] {
		d := math.Abs(l - target)
		if d < bestDiff {
			best, bestDiff = l, d
		}
	}
	return best
}

// ChooseBarLength picks a round bar length covering about a sixth of
// a field of view, both in the same unit.
func ChooseBarLength(fov float64) float64 {
	return NearestBarLength(fov / barFovFraction)
}

// NewScaleBar lays out a scale bar for an image of width x height
// pixels. Only the horizontal pixel size is used, as the bar is
// horizontal.
func NewScaleBar(width, height int, px PixelSize) (ScaleBar, error) {
	var sb ScaleBar

	err := px.Validate()
	if err != nil {
		return sb, &OutOfRangeError{FOV: float64(width) * px.X, Err: err}
	}
	if height <= 0 {
		return sb, fmt.Errorf("image height must be positive, got %d", height)
	}

	fov, unit, err := SelectUnit(px.X, width)
	if err != nil {
		return sb, err
	}

	sb.Unit = unit
	sb.Length = ChooseBarLength(fov)
	sb.LengthPx = sb.Length / unit.FromMeters(px.X)
	sb.Thickness = float64(height) / barThicknessDiv
	sb.OriginX = float64(width) / barInsetX
	sb.OriginY = float64(height) * barTopNumerator / barTopDenominator

	// ties go to even, so 1250px high images get a 2px outline
	sb.Outline = int(math.RoundToEven(float64(height) / barOutlineDiv))
	if sb.Outline < 1 {
		sb.Outline = 1
	}

	sb.Rect = image.Rect(
		round(sb.OriginX), round(sb.OriginY),
		round(sb.OriginX+sb.LengthPx), round(sb.OriginY+sb.Thickness),
	)

	sb.Label = fmt.Sprintf("%g %s", sb.Length, sb.Unit)
	sb.FontSize = width / labelFontDiv
	if sb.FontSize < 1 {
		sb.FontSize = 1
	}
	sb.TextOrigin = image.Pt(round(sb.OriginX), round(sb.OriginY+sb.Thickness))

	return sb, nil
}

// Draw renders the bar and its label onto dst. Anything falling
// outside of dst is clipped.
func (sb ScaleBar) Draw(dst draw.Image, face font.Face) {
	off := dst.Bounds().Min

	r := sb.Rect.Add(off)
	draw.Draw(dst, r, image.Black, image.Point{}, draw.Src)
	draw.Draw(dst, r.Inset(sb.Outline), image.White, image.Point{}, draw.Src)

	o := sb.TextOrigin.Add(off)
	ascent := face.Metrics().Ascent
	d := &font.Drawer{Dst: dst, Face: face, Src: image.Black}
	for _, h := range sb.haloOffsets() {
		d.Dot = fixed.Point26_6{X: fixed.I(o.X + h.X), Y: fixed.I(o.Y+h.Y) + ascent}
		d.DrawString(sb.Label)
	}
	d.Src = image.White
	d.Dot = fixed.Point26_6{X: fixed.I(o.X), Y: fixed.I(o.Y) + ascent}
	d.DrawString(sb.Label)
}

// haloOffsets are the positions, relative to TextOrigin, of the black
// copies of the label drawn beneath the white one
func (sb ScaleBar) haloOffsets() []image.Point {
	w := sb.Outline
	return []image.Point{{-w, -w}, {w, -w}, {-w, w}, {w, w}}
}

// Annotate lays out a scale bar for dst and draws it, using a font
// found by fonts. A nil fonts uses the built in font.
func Annotate(dst draw.Image, px PixelSize, fonts *FontResolver) (ScaleBar, error) {
	b := dst.Bounds()
	sb, err := NewScaleBar(b.Dx(), b.Dy(), px)
	if err != nil {
		return sb, err
	}
	face := fonts.Face(sb.FontSize)
	defer face.Close()
	sb.Draw(dst, face)
	return sb, nil
}

func round(f float64) int {
	return int(math.Round(f))
}
