package render

import (
	"image"

	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// ToImage maps a world point p to image-space coordinates for an image of
// the given size drawn over region: u = p.x*imageW/W_region,
// v = imageH - p.y*imageH/H_region. World Y increases upward; image Y
// increases downward, hence the flip.
func ToImage(p tensor.Vec2, region geom.Region, size image.Point) (u, v float64) {
	u = p.X * float64(size.X) / region.Width()
	v = float64(size.Y) - p.Y*float64(size.Y)/region.Height()
	return u, v
}
