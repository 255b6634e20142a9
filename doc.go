// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The micrograph package contains tools and functions for converting
calibrated electron microscope images into formats which are easy to share,
with a focus on adding an accurate, readable scale bar.

Introduction

Microscope acquisition software records the physical size of each pixel
alongside the image. Most image viewers throw that information away, so an
image exported to PNG loses its scale. The micrograph package keeps it, by
drawing a scale bar onto the image before it is saved.

A scale bar is laid out in three steps:

  1. SelectUnit picks the largest length unit (m, mm, µm, nm or pm) in which
     the field of view of the image is between 1 and 1000.
  2. ChooseBarLength picks a round length from a fixed list (0.1, 0.2, 0.5,
     1, 2, 5, ... 5000) which is closest to a sixth of the field of view.
  3. NewScaleBar works out where the bar and its label go, and ScaleBar.Draw
     draws them. The bar is white with a black outline, and the label is
     white with a black halo, so both are readable on dark and light images.

Annotate does all of this for a whole image in one go.

Fonts

Labels are drawn with the first font that can be loaded from a list of common
system fonts. Extra fonts can be listed, one path per line, in
~/.config/micrograph/fonts. If none of them can be loaded the Go font which
is built into every binary is used instead, so drawing a label never fails.

Tools

Several commands are provided, all of which give usage information with the
'-h' flag:

  scalebar        convert images to 8 bit PNGs with a scale bar
  tiff16          convert images to 16 bit TIFFs
  intensitygraph  graph the intensities of an image

The physical pixel size of the input images is given with the -px flag (and
-py for detectors with non square pixels), in meters.
*/
package micrograph
