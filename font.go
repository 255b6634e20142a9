// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// systemFonts are common sans serif fonts on Linux, macOS and Windows,
// in order of preference
var systemFonts = []string{
	"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation-sans/LiberationSans-Regular.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	`C:\Windows\Fonts\arial.ttf`,
}

// FontResolver finds a font to draw labels with. Candidates are
// tried in order, and if none of them can be loaded the Go font
// built into the binary is used, so a face is always returned.
type FontResolver struct {
	Candidates []string
	Logger     *log.Logger
}

// NewFontResolver returns a FontResolver which tries any fonts listed
// in the user's font settings, followed by the usual system fonts.
func NewFontResolver(logger *log.Logger) *FontResolver {
	r := &FontResolver{Logger: logger}
	extra, err := GetFontSettings(FontSettingsPath())
	if err != nil {
		r.log("Ignoring font settings:", err)
	}
	r.Candidates = append(extra, systemFonts...)
	return r
}

func (r *FontResolver) log(v ...interface{}) {
	if r == nil || r.Logger == nil {
		return
	}
	r.Logger.Println(v...)
}

// Face returns a face of size pixels from the first candidate font
// which loads
func (r *FontResolver) Face(size int) font.Face {
	if size < 1 {
		size = 1
	}

	if r != nil {
		for _, p := range r.Candidates {
			face, err := loadFace(p, size)
			if err == nil {
				return face
			}
			if !errors.Is(err, fs.ErrNotExist) {
				r.log("Skipping font", p, err)
			}
		}
		r.log("No candidate fonts found, using built in font")
	}

	f, err := opentype.Parse(goregular.TTF)
	if err == nil {
		face, err := opentype.NewFace(f, faceOptions(size))
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

func faceOptions(size int) *opentype.FaceOptions {
	// at 72 DPI one point is one pixel
	return &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}
}

// loadFace loads a TrueType or OpenType font, or the first font of a
// collection
func loadFace(path string, size int) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f *opentype.Font
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		c, err := opentype.ParseCollection(b)
		if err != nil {
			return nil, fmt.Errorf("Error parsing font collection: %w", err)
		}
		if c.NumFonts() < 1 {
			return nil, errors.New("font collection is empty")
		}
		f, err = c.Font(0)
		if err != nil {
			return nil, fmt.Errorf("Error reading font from collection: %w", err)
		}
	default:
		f, err = opentype.Parse(b)
		if err != nil {
			return nil, fmt.Errorf("Error parsing font: %w", err)
		}
	}

	return opentype.NewFace(f, faceOptions(size))
}
