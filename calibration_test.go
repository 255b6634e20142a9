// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixelSize(t *testing.T) {
	cases := []struct {
		name  string
		px    PixelSize
		valid bool
	}{
		{"isotropic", Isotropic(1e-9), true},
		{"anisotropic", PixelSize{X: 1e-9, Y: 2e-9}, true},
		{"zero", PixelSize{}, false},
		{"negativeheight", PixelSize{X: 1e-9, Y: -1e-9}, false},
		{"infwidth", PixelSize{X: math.Inf(1), Y: 1e-9}, false},
		{"nan", Isotropic(math.NaN()), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.px.Validate()
			if c.valid && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !c.valid && !errors.Is(err, ErrInvalidPixelSize) {
				t.Errorf("Expected ErrInvalidPixelSize, got %v", err)
			}
		})
	}

	px := PixelSize{X: 1e-9, Y: 2e-9}
	if px.Isotropic() {
		t.Errorf("%v reported as isotropic", px)
	}
	if s := px.Scale(0.5); s != (PixelSize{X: 2e-9, Y: 4e-9}) {
		t.Errorf("Expected halving the image to double the pixel size, got %v", s)
	}
	if s := Isotropic(1e-9).String(); s != "1e-09 m" {
		t.Errorf("Unexpected string %s", s)
	}
}

func TestNewCalibratedImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.Pix = []uint8{0, 0x80, 0xff, 1, 2, 3}

	gray16 := image.NewGray16(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			gray16.SetGray16(x, y, color.Gray16{Y: uint16(1000*y + x)})
		}
	}
	sub := gray16.SubImage(image.Rect(1, 2, 3, 4))

	cases := []struct {
		name     string
		img      image.Image
		expected *CalibratedImage
	}{
		{"gray", gray, &CalibratedImage{Width: 3, Height: 2, PixelSize: Isotropic(1e-9),
			Pix: []float64{0, 0x8080, 0xffff, 0x0101, 0x0202, 0x0303}}},
		{"subimage", sub, &CalibratedImage{Width: 2, Height: 2, PixelSize: Isotropic(1e-9),
			Pix: []float64{2001, 2002, 3001, 3002}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ci, err := NewCalibratedImage(c.img, Isotropic(1e-9))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(c.expected, ci); diff != "" {
				t.Errorf("Image differs (-want +got):\n%s", diff)
			}
		})
	}

	_, err := NewCalibratedImage(gray, Isotropic(0))
	if !errors.Is(err, ErrInvalidPixelSize) {
		t.Errorf("Expected ErrInvalidPixelSize, got %v", err)
	}
}

func TestGray(t *testing.T) {
	cases := []struct {
		name     string
		pix      []float64
		expected []uint8
	}{
		{"stretch", []float64{100, 150, 200, 300}, []uint8{0, 64, 128, 255}},
		{"negative", []float64{-1, 0, 1}, []uint8{0, 128, 255}},
		{"constant", []float64{7, 7, 7}, []uint8{0, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ci := &CalibratedImage{Width: len(c.pix), Height: 1, Pix: c.pix}
			img := ci.Gray()
			if diff := cmp.Diff(c.expected, img.Pix); diff != "" {
				t.Errorf("Gray differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGray16(t *testing.T) {
	ci := &CalibratedImage{Width: 3, Height: 2, Pix: []float64{-5, 3.7, 70000, 65535, math.NaN(), 1234}}
	img := ci.Gray16()
	expected := []uint16{0, 3, 65535, 65535, 0, 1234}
	for i, want := range expected {
		x, y := i%3, i/3
		if got := img.Gray16At(x, y).Y; got != want {
			t.Errorf("Pixel %d,%d: expected %d, got %d", x, y, want, got)
		}
	}
}

func TestDownscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 6))

	small, err := Downscale(img, 0.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if small.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Errorf("Expected 5x3, got %v", small.Bounds())
	}

	same, err := Downscale(img, 1)
	if err != nil || same != image.Image(img) {
		t.Errorf("Expected a factor of 1 to return the image itself")
	}

	for _, f := range []float64{0, -1, 1.5, math.NaN(), 0.01} {
		_, err := Downscale(img, f)
		if err == nil {
			t.Errorf("Expected an error for factor %g", f)
		}
	}
}
