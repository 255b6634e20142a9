// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// scalebar converts calibrated microscope images to 8 bit PNGs with a
// scale bar drawn on them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/micrograph"
	"rescribe.xyz/micrograph/internal/convert"
	"rescribe.xyz/micrograph/preproc"
)

const usage = `Usage: scalebar -px size [-py size] [-median] [-mw winsize] [-down factor] [-hist] [-o] img...

Converts each image to an 8 bit PNG with a scale bar in the bottom
left corner, saved alongside the original as name_scalebar.png.

The pixel size is given in meters, so for example 1.2e-9 for 1.2nm
pixels. Use -py as well if the pixels are not square.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	px := flag.Float64("px", 0, "Pixel width, in meters")
	py := flag.Float64("py", 0, "Pixel height, in meters. Set to the pixel width if not set.")
	median := flag.Bool("median", false, "Apply a median filter to remove noise before converting")
	mwsize := flag.Int("mw", preproc.DefaultMedianSize, "Window size for the median filter")
	down := flag.Float64("down", 1, "Factor to downscale the image by, between 0 and 1")
	hist := flag.Bool("hist", false, "Also save a graph of the intensities of each image, as name_hist.png")
	overwrite := flag.Bool("o", false, "Overwrite existing output files")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *py == 0 {
		*py = *px
	}

	verboselog := log.New(os.Stdout, "", 0)

	enc := convert.PNGEncoder{
		Downscale: *down,
		Fonts:     micrograph.NewFontResolver(verboselog),
	}
	if *median {
		enc.Median = *mwsize
	}

	c := convert.Converter{
		Encoder:   enc,
		PixelSize: micrograph.PixelSize{X: *px, Y: *py},
		Overwrite: *overwrite,
		Logger:    verboselog,
	}
	if *hist {
		c.HistogramBins = 256
	}

	err := c.PixelSize.Validate()
	if err != nil {
		log.Fatalln("Invalid pixel size, set it with -px:", err)
	}

	_, err = c.ConvertAll(flag.Args())
	if err != nil {
		log.Fatalln(err)
	}
}
