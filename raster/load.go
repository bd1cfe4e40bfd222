package raster

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// LoadBlueChannel decodes the image at path and returns its blue channel as
// a Raster. PNG and JPEG are decoded via the standard library; BMP and TIFF
// via golang.org/x/image, covering the heightmap/watermap formats the
// reference tooling ships as test fixtures.
func LoadBlueChannel(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	bounds := img.Bounds()
	r := NewRaster(bounds.Dy(), bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit-scaled components; rescale to [0,255].
			r.Blue[y-bounds.Min.Y][x-bounds.Min.X] = float64(b>>8) / 255.0 * 255.0
		}
	}
	return r, nil
}

// CheckSize returns ErrSizeMismatch if r's dimensions differ from the given
// width/height, used by callers (package field) that require a raster input
// to match an existing field's grid dimensions exactly.
func CheckSize(r *Raster, width, height int) error {
	if r.Width != width || r.Height != height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSizeMismatch, r.Width, r.Height, width, height)
	}
	return nil
}
