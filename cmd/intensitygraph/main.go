package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/tiff"
	"rescribe.xyz/micrograph"
)

func main() {
	bins := flag.Int("bins", 256, "Number of intensity bins")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: intensitygraph [-bins n] img graph.png")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", flag.Arg(0), err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("Could not decode image: %v\n", err)
	}

	// the graph doesn't depend on the calibration
	ci, err := micrograph.NewCalibratedImage(img, micrograph.Isotropic(1))
	if err != nil {
		log.Fatalln(err)
	}

	fn := flag.Arg(1)
	out, err := os.Create(fn)
	if err != nil {
		log.Fatalln("Error creating file", fn, err)
	}
	defer out.Close()
	err = micrograph.Histogram(ci, *bins, filepath.Base(flag.Arg(0)), out)
	if err != nil {
		log.Fatalln("Error creating graph", err)
	}
}
