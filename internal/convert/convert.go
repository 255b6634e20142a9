// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// convert is a package used by the conversion commands, which handles
// converting image files one after another with a particular Encoder.
// Note that it is considered an "internal" package, not intended for
// external use, and no guarantee is made of the stability of any
// interfaces provided.
package convert

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rescribe.xyz/micrograph"
)

var ErrExists = errors.New("destination file already exists")

// Converter converts image files which all share the same pixel size
type Converter struct {
	Encoder   Encoder
	PixelSize micrograph.PixelSize
	Overwrite bool

	// HistogramBins, if set, also writes a graph of the intensities
	// of each input image, with this many bins
	HistogramBins int

	// if Logger is nil, progress is logged to stdout
	Logger *log.Logger
}

func (c *Converter) log(v ...interface{}) {
	if c.Logger == nil {
		c.Logger = log.New(os.Stdout, "", 0)
	}
	c.Logger.Println(v...)
}

// Dest returns the path that path will be converted to
func (c *Converter) Dest(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + c.Encoder.Suffix()
}

// HistogramDest returns the path that the intensity graph of path
// will be written to
func (c *Converter) HistogramDest(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_hist.png"
}

// Load decodes an image file and attaches the converter's pixel size
func (c *Converter) Load(path string) (*micrograph.CalibratedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Could not open file %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Could not decode image %s: %w", path, err)
	}
	return micrograph.NewCalibratedImage(img, c.PixelSize)
}

// ConvertFile converts the image at path, returning the path of the
// converted file
func (c *Converter) ConvertFile(path string) (string, error) {
	dest := c.Dest(path)
	if dest == path {
		return "", fmt.Errorf("Refusing to convert %s onto itself", path)
	}
	var hdest string
	if c.HistogramBins > 0 {
		hdest = c.HistogramDest(path)
	}
	if !c.Overwrite {
		for _, d := range []string{dest, hdest} {
			if d == "" {
				continue
			}
			_, err := os.Stat(d)
			if err == nil {
				return "", fmt.Errorf("%w: %s", ErrExists, d)
			}
		}
	}

	ci, err := c.Load(path)
	if err != nil {
		return "", err
	}

	err = writeFile(dest, func(f *os.File) error {
		return c.Encoder.Encode(f, ci)
	})
	if err != nil {
		return "", fmt.Errorf("Error converting %s: %w", path, err)
	}

	if hdest != "" {
		err = writeFile(hdest, func(f *os.File) error {
			return micrograph.Histogram(ci, c.HistogramBins, filepath.Base(path), f)
		})
		if err != nil {
			_ = os.Remove(dest)
			return "", fmt.Errorf("Error graphing intensities of %s: %w", path, err)
		}
	}

	return dest, nil
}

// writeFile creates the file at path and fills it with write,
// removing it again if anything goes wrong
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}

// ConvertAll converts each file in turn. A file which fails to convert
// is logged and skipped, and the number of files which were converted
// is returned, along with an error if any failed.
func (c *Converter) ConvertAll(paths []string) (int, error) {
	var failed int
	for _, p := range paths {
		c.log("Converting", p)
		dest, err := c.ConvertFile(p)
		if err != nil {
			c.log("Failed:", err)
			failed++
			continue
		}
		c.log("Saved converted image to", dest)
	}
	n := len(paths) - failed
	if failed > 0 {
		return n, fmt.Errorf("%d of %d files failed to convert", failed, len(paths))
	}
	return n, nil
}
