package icongen

import (
	"fmt"
	"log/slog"
	"math"
)

// Renderer draws manifest icons: a dark background, a radial gradient disc
// and a centered glyph. A Renderer holds no per-icon state; each call owns
// its canvas from allocation until it is saved.
type Renderer struct {
	opts options
}

// NewRenderer creates a renderer with the default icon style, adjusted by opts.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Draw renders a size×size icon and returns the canvas without saving it.
func (r *Renderer) Draw(size int) (*Canvas, error) {
	if err := r.checkSize(size); err != nil {
		return nil, err
	}
	log := Logger()

	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}
	c.Clear(r.opts.background.WithAlpha(255))
	log.Debug("canvas allocated", slog.Int("size", size))

	switch r.opts.gradientMode {
	case GradientAnalytic:
		drawGradientAnalytic(c, r.opts.gradientColor, r.opts.gradientStrength)
		log.Debug("gradient drawn", slog.Int("size", size), slog.String("mode", r.opts.gradientMode.String()))
	default:
		n := drawGradientRings(c, r.opts.gradientColor, r.opts.gradientStrength)
		log.Debug("gradient drawn", slog.Int("size", size), slog.String("mode", GradientRings.String()),
			slog.Int("circles", n))
	}

	if err := r.drawGlyph(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Render draws a size×size icon and writes it as PNG to path.
// The directory containing path must already exist.
func (r *Renderer) Render(size int, path string) error {
	c, err := r.Draw(size)
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return err
	}
	Logger().Info("icon written", slog.Int("size", size), slog.String("path", path))
	return nil
}

// checkSize rejects sizes before any pixel buffer is allocated.
func (r *Renderer) checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size > r.opts.maxSize {
		return fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, size, r.opts.maxSize)
	}
	return nil
}

// drawGlyph centers the glyph box on the canvas midpoint and fills the outline.
func (r *Renderer) drawGlyph(c *Canvas) error {
	g := r.opts.glyph
	if g == nil {
		return nil
	}
	box := math.Round(float64(c.Size()) * r.opts.glyphScale)
	if box <= 0 {
		return nil
	}

	outline, err := g.Outline(box)
	if err != nil {
		return fmt.Errorf("icongen: glyph %s: %w", glyphName(g.Rune()), err)
	}
	center := c.Center()
	c.FillPath(outline.Translate(center.X-box/2, center.Y-box/2), r.opts.glyphColor)

	Logger().Debug("glyph drawn", slog.Int("size", c.Size()), slog.String("glyph", glyphName(g.Rune())),
		slog.Float64("box", box))
	return nil
}
