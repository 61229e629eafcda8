package icongen

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/icongen/internal/imageio"
)

// Canvas is a square RGBA pixel buffer.
// Pixels are stored premultiplied, as in image.RGBA.
type Canvas struct {
	size int
	img  *image.RGBA
}

// NewCanvas creates a transparent size×size canvas.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Canvas{
		size: size,
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
	}, nil
}

// Size returns the side length of the canvas in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Center returns the canvas midpoint.
func (c *Canvas) Center() Point {
	half := float64(c.size) / 2
	return Point{X: half, Y: half}
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col Color) {
	pm := color.RGBAModel.Convert(col.NRGBA()).(color.RGBA)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = pm.R
		pix[i+1] = pm.G
		pix[i+2] = pm.B
		pix[i+3] = pm.A
	}
}

// Pixel returns the non-premultiplied color at (x, y).
// Out-of-bounds coordinates return the zero Color.
func (c *Canvas) Pixel(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(c.img.Rect)) {
		return Color{}
	}
	return FromColor(c.img.RGBAAt(x, y))
}

// BlendPixel composites col over the pixel at (x, y) using source-over.
// Out-of-bounds coordinates are ignored.
func (c *Canvas) BlendPixel(x, y int, col Color) {
	if col.A == 0 || !(image.Point{X: x, Y: y}.In(c.img.Rect)) {
		return
	}
	a := uint32(col.A)
	inv := 255 - a
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = uint8((uint32(col.R)*a + uint32(p[0])*inv + 127) / 255)
	p[1] = uint8((uint32(col.G)*a + uint32(p[1])*inv + 127) / 255)
	p[2] = uint8((uint32(col.B)*a + uint32(p[2])*inv + 127) / 255)
	p[3] = uint8((a*255 + uint32(p[3])*inv + 127) / 255)
}

// FillPath composites the anti-aliased interior of path over the canvas
// using the nonzero winding rule. Only the path's bounding box is touched.
func (c *Canvas) FillPath(path *Path, col Color) {
	if path.Empty() || col.A == 0 {
		return
	}

	lo, hi := path.Bounds()
	r := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	// The rasterizer covers only r; shift the path into its local space.
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(p Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	var z vector.Rasterizer
	z.Reset(r.Dx(), r.Dy())
	open := false
	for _, s := range path.segs {
		switch s.op {
		case opMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(s.pts[0]))
			open = true
		case opLineTo:
			z.LineTo(pt(s.pts[0]))
		case opQuadTo:
			bx, by := pt(s.pts[0])
			cx, cy := pt(s.pts[1])
			z.QuadTo(bx, by, cx, cy)
		case opCubeTo:
			bx, by := pt(s.pts[0])
			cx, cy := pt(s.pts[1])
			dx, dy := pt(s.pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case opClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	z.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{})
}

// FillCircle composites a filled circle of radius r centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		return
	}
	c.FillPath(Circle(cx, cy, r), col)
}

// SavePNG encodes the canvas as PNG and writes it to path.
func (c *Canvas) SavePNG(path string) error {
	if err := imageio.WritePNG(path, c.img); err != nil {
		return fmt.Errorf("icongen: save %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
