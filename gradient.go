package icongen

import "math"

// GradientMode selects how the radial gradient disc is produced.
type GradientMode int

const (
	// GradientRings layers filled circles of descending radius, each
	// slightly more opaque than the last. Smaller circles are drawn on top,
	// so the disc brightens toward the center.
	GradientRings GradientMode = iota

	// GradientAnalytic computes a single alpha per pixel from its distance
	// to the center.
	GradientAnalytic
)

// String returns the mode name.
func (m GradientMode) String() string {
	switch m {
	case GradientRings:
		return "rings"
	case GradientAnalytic:
		return "analytic"
	default:
		return "unknown"
	}
}

// ringAlpha returns the alpha of the ring with radius i when the outermost
// ring has radius half. The result is rounded and clamped to [0, 255].
func ringAlpha(i, half int, strength float64) uint8 {
	if half <= 0 {
		return 0
	}
	return alpha8(255 * (1 - float64(i)/float64(half)) * strength)
}

// drawGradientRings draws circles of radius size/2 down to 1 on c and
// returns the number of circles composited. A canvas of size 1 draws none.
func drawGradientRings(c *Canvas, col Color, strength float64) int {
	half := c.Size() / 2
	center := c.Center()
	drawn := 0
	for i := half; i >= 1; i-- {
		a := ringAlpha(i, half, strength)
		if a == 0 {
			continue
		}
		c.FillCircle(center.X, center.Y, float64(i), col.WithAlpha(a))
		drawn++
	}
	return drawn
}

// drawGradientAnalytic blends col into every pixel whose center lies within
// size/2 of the canvas midpoint, with alpha falling linearly to zero at the rim.
func drawGradientAnalytic(c *Canvas, col Color, strength float64) {
	half := c.Size() / 2
	if half == 0 {
		return
	}
	center := c.Center()
	end := float64(half)
	for y := 0; y < c.Size(); y++ {
		for x := 0; x < c.Size(); x++ {
			t := radialT(float64(x)+0.5, float64(y)+0.5, center, end)
			if t >= 1 {
				continue
			}
			c.BlendPixel(x, y, col.WithAlpha(alpha8(255*(1-t)*strength)))
		}
	}
}

// radialT returns the distance from (x, y) to center as a fraction of
// endRadius. Zero is the center and one is the rim.
func radialT(x, y float64, center Point, endRadius float64) float64 {
	dx := x - center.X
	dy := y - center.Y
	return math.Sqrt(dx*dx+dy*dy) / endRadius
}
