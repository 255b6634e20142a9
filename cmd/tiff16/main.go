// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// tiff16 converts calibrated microscope images to 16 bit TIFFs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/micrograph"
	"rescribe.xyz/micrograph/internal/convert"
)

const usage = `Usage: tiff16 [-o] img...

Converts each image to a 16 bit greyscale TIFF, saved alongside the
original as name.tiff. Intensities are kept as they are, other than
being clamped to the 16 bit range.

The pixel size is not recorded in the TIFF, so the output carries no
calibration; use scalebar for an image which shows its scale. MRC
output is not provided.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	overwrite := flag.Bool("o", false, "Overwrite existing output files")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	// the tiff encoder has nowhere to record a calibration, so any
	// valid pixel size will do
	c := convert.Converter{
		Encoder:   convert.TIFFEncoder{},
		PixelSize: micrograph.Isotropic(1),
		Overwrite: *overwrite,
		Logger:    log.New(os.Stdout, "", 0),
	}

	_, err := c.ConvertAll(flag.Args())
	if err != nil {
		log.Fatalln(err)
	}
}
