// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package micrograph

// This file handles the user's font settings, which let fonts that
// aren't in the usual system locations be used for labels.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FontSettingsPath returns the location of the font settings file.
// It lists font file paths, one per line; blank lines and lines
// starting with # are ignored.
func FontSettingsPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "micrograph", "fonts")
}

// GetFontSettings reads the font paths listed in the file at p. A
// missing file is not an error, and returns no paths.
func GetFontSettings(p string) ([]string, error) {
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Error reading font settings from %s: %v", p, err)
	}

	var paths []string
	for _, l := range strings.Split(string(b), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		paths = append(paths, l)
	}
	return paths, nil
}
