// Package imageio loads raster images and samples them down to the small
// color grids the graph builder consumes.
//
// Images are decoded with the standard image decoders (PNG, JPEG and GIF
// are registered) and resized with golang.org/x/image/draw. Alpha is
// dropped: each grid cell keeps the straight RGB of its resampled pixel.
// Grid rows follow image rows, so cell [row][col] is pixel (x=col, y=row).
package imageio
