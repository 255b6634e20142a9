// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

const maxticks = 16

// histogramBins counts samples into bins of equal width spanning
// the range of pix, returning the centre of each bin and its count.
// The largest sample falls into the last bin.
func histogramBins(pix []float64, bins int) ([]float64, []float64) {
	min, max := pix[0], pix[0]
	for _, v := range pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}
	width := span / float64(bins)

	centres := make([]float64, bins)
	for i := range centres {
		centres[i] = min + width*(float64(i)+0.5)
	}
	counts := make([]float64, bins)
	for _, v := range pix {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return centres, counts
}

// Histogram creates a graph of how many pixels of an image have each
// intensity, which is useful to check how a conversion has changed
// the intensities.
func Histogram(ci *CalibratedImage, bins int, title string, w io.Writer) error {
	if bins < 2 {
		return errors.New("Need at least 2 bins for a histogram")
	}
	if len(ci.Pix) == 0 {
		return errors.New("No samples to graph")
	}

	xvalues, yvalues := histogramBins(ci.Pix, bins)

	// go-chart refuses a y range of zero height, which automatic
	// ranging gives when every bin has the same count
	var maxcount float64
	for _, y := range yvalues {
		if y > maxcount {
			maxcount = y
		}
	}

	var ticks []chart.Tick
	tickevery := bins / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, x := range xvalues {
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name:  "Intensity",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxcount * 1.1,
			},
		},
		Series: []chart.Series{
			mainSeries,
		},
	}
	return graph.Render(chart.PNG, w)
}
