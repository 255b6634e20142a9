// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"fmt"
	"math"
)

// Unit is a length unit used to present a physical size to a reader
type Unit int

const (
	Meter Unit = iota
	Millimeter
	Micrometer
	Nanometer
	Picometer
)

// units is the order in which SelectUnit tries each unit
var units = []Unit{Meter, Millimeter, Micrometer, Nanometer, Picometer}

// Scale returns the number of meters in one of u
func (u Unit) Scale() float64 {
	switch u {
	case Meter:
		return 1
	case Millimeter:
		return 1e-3
	case Micrometer:
		return 1e-6
	case Nanometer:
		return 1e-9
	case Picometer:
		return 1e-12
	}
	return math.NaN()
}

func (u Unit) String() string {
	switch u {
	case Meter:
		return "m"
	case Millimeter:
		return "mm"
	case Micrometer:
		return "µm"
	case Nanometer:
		return "nm"
	case Picometer:
		return "pm"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// FromMeters converts a length in meters into u
func (u Unit) FromMeters(m float64) float64 {
	return m / u.Scale()
}

// OutOfRangeError is returned when a field of view can't be written
// as a number between 1 and 1000 in any of the known units. Err is
// set when the field of view couldn't be worked out at all, as with a
// pixel size of zero, and is then ErrInvalidPixelSize.
type OutOfRangeError struct {
	FOV float64 // field of view in meters
	Err error
}

func (e *OutOfRangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("field of view of %g m is outside the range of displayable units: %v", e.FOV, e.Err)
	}
	return fmt.Sprintf("field of view of %g m is outside the range of displayable units", e.FOV)
}

func (e *OutOfRangeError) Unwrap() error {
	return e.Err
}

// SelectUnit finds the largest unit in which the field of view of an
// image width pixels wide is at least 1 and less than 1000, and
// returns the field of view in that unit.
func SelectUnit(pixelSize float64, width int) (float64, Unit, error) {
	fov := float64(width) * pixelSize
	if !validLength(pixelSize) || width <= 0 {
		return 0, Meter, &OutOfRangeError{
			FOV: fov,
			Err: fmt.Errorf("%w: %g m over %d px", ErrInvalidPixelSize, pixelSize, width),
		}
	}

	for _, u := range units {
		frac := fov / u.Scale()
		if frac >= 1 && frac < 1000 {
			return frac, u, nil
		}
	}

	return 0, Meter, &OutOfRangeError{FOV: fov}
}

func validLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
