package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// DefaultSize is the default grid width and height.
const DefaultSize = 21

var (
	// ErrBadSize indicates a non-positive target width or height.
	ErrBadSize = errors.New("imageio: grid width and height must be positive")
	// ErrEmptyImage indicates a decoded image with no pixels.
	ErrEmptyImage = errors.New("imageio: image has no pixels")
	// ErrUnknownResampler indicates an unrecognized resampler name.
	ErrUnknownResampler = errors.New("imageio: unknown resampler")
)

// Resampler selects the interpolation used when resizing.
type Resampler int

const (
	// Nearest picks the closest source pixel; colors stay exact.
	Nearest Resampler = iota
	// ApproxBiLinear is a fast bilinear approximation.
	ApproxBiLinear
	// BiLinear is the bilinear kernel.
	BiLinear
	// CatmullRom is the Catmull-Rom cubic kernel, the slowest and sharpest.
	CatmullRom
)

var resamplerNames = map[Resampler]string{
	Nearest:        "nearest",
	ApproxBiLinear: "approx-bilinear",
	BiLinear:       "bilinear",
	CatmullRom:     "catmull-rom",
}

// String returns the resampler's configuration name.
func (r Resampler) String() string {
	if s, ok := resamplerNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Resampler(%d)", int(r))
}

// ParseResampler maps a configuration name to a Resampler.
// Matching is case-insensitive; the empty string selects BiLinear.
func ParseResampler(s string) (Resampler, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BiLinear, nil
	}
	for r, name := range resamplerNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResampler, s)
}

func (r Resampler) interpolator() draw.Interpolator {
	switch r {
	case Nearest:
		return draw.NearestNeighbor
	case ApproxBiLinear:
		return draw.ApproxBiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// Load opens path, decodes it and resamples it to a height×width grid.
func Load(path string, width, height int, method Resampler) ([][]pixelgraph.Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	cells, err := Decode(f, width, height, method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cells, nil
}

// Decode reads an encoded image from r and resamples it to a height×width grid.
func Decode(r io.Reader, width, height int, method Resampler) ([][]pixelgraph.Color, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return FromImage(img, width, height, method)
}

// FromImage resamples img to a height×width grid of colors.
func FromImage(img image.Image, width, height int, method Resampler) ([][]pixelgraph.Color, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	method.interpolator().Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	cells := make([][]pixelgraph.Color, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]pixelgraph.Color, width)
		for x := 0; x < width; x++ {
			c := dst.NRGBAAt(x, y)
			cells[y][x] = pixelgraph.Color{R: c.R, G: c.G, B: c.B}
		}
	}
	return cells, nil
}

// ToImage renders a color grid back into an opaque image, one pixel per cell.
// Rows shorter than the first row leave the remaining pixels transparent.
func ToImage(cells [][]pixelgraph.Color) *image.NRGBA {
	h := len(cells)
	w := 0
	if h > 0 {
		w = len(cells[0])
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range cells {
		for x, c := range row {
			if x >= w {
				break
			}
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}
