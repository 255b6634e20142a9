// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestSelectUnit(t *testing.T) {
	cases := []struct {
		px    float64
		width int
		unit  Unit
		value float64
	}{
		{1e-9, 2000, Micrometer, 2}, // 2000 nm is too long to be shown in nm
		{5e-10, 1200, Nanometer, 600},
		{1e-3, 500, Millimeter, 500},
		{1, 10, Meter, 10},
		{1e-12, 1, Picometer, 1},
		{1e-6, 999, Micrometer, 999},
		{2.5e-11, 2048, Nanometer, 51.2},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%g_%d", c.px, c.width), func(t *testing.T) {
			v, u, err := SelectUnit(c.px, c.width)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if u != c.unit {
				t.Errorf("Expected unit %s, got %s", c.unit, u)
			}
			if math.Abs(v-c.value) > 1e-9*c.value {
				t.Errorf("Expected value %g, got %g", c.value, v)
			}
		})
	}
}

func TestSelectUnitRange(t *testing.T) {
	const width = 1000
	// fields of view from 1.1e-12 m to 0.8 km, avoiding exact powers of 10
	for i := 0; i < 150; i++ {
		fov := math.Pow(10, -11.95+0.1*float64(i))
		v, u, err := SelectUnit(fov/width, width)
		if err != nil {
			t.Errorf("%g m: unexpected error: %v", fov, err)
			continue
		}
		if v < 1 || v >= 1000 {
			t.Errorf("%g m: value %g %s out of range", fov, v, u)
		}
	}
}

func TestSelectUnitErrors(t *testing.T) {
	cases := []struct {
		name    string
		px      float64
		width   int
		invalid bool
	}{
		{"toolarge", 1, 1000, false},
		{"waytoolarge", 1e6, 1000, false},
		{"toosmall", 1e-16, 1000, false},
		{"zero", 0, 1000, true},
		{"negative", -1e-9, 1000, true},
		{"nan", math.NaN(), 1000, true},
		{"inf", math.Inf(1), 1000, true},
		{"nowidth", 1e-9, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := SelectUnit(c.px, c.width)
			if err == nil {
				t.Fatalf("Expected an error")
			}
			var rangeErr *OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("Expected OutOfRangeError, got %v", err)
			}
			if errors.Is(err, ErrInvalidPixelSize) != c.invalid {
				t.Errorf("ErrInvalidPixelSize expected %v, got %v", c.invalid, err)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	cases := []struct {
		unit   Unit
		symbol string
		scale  float64
	}{
		{Meter, "m", 1},
		{Millimeter, "mm", 1e-3},
		{Micrometer, "µm", 1e-6},
		{Nanometer, "nm", 1e-9},
		{Picometer, "pm", 1e-12},
	}
	for _, c := range cases {
		t.Run(c.symbol, func(t *testing.T) {
			if c.unit.String() != c.symbol {
				t.Errorf("Expected %s, got %s", c.symbol, c.unit)
			}
			if c.unit.Scale() != c.scale {
				t.Errorf("Expected scale %g, got %g", c.scale, c.unit.Scale())
			}
			if v := c.unit.FromMeters(3 * c.scale); math.Abs(v-3) > 1e-12 {
				t.Errorf("Expected 3, got %g", v)
			}
		})
	}

	if s := Unit(42).String(); s != "Unit(42)" {
		t.Errorf("Unexpected name for unknown unit: %s", s)
	}
}
