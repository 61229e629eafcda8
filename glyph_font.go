package icongen

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontGlyph draws a single rune taken from an OpenType or TrueType font.
// A FontGlyph is not safe for concurrent use.
type FontGlyph struct {
	font   *opentype.Font
	r      rune
	index  sfnt.GlyphIndex
	buffer sfnt.Buffer
}

// NewFontGlyph parses font data and looks up r.
// It returns ErrGlyphNotFound if the font has no glyph for r.
func NewFontGlyph(data []byte, r rune) (*FontGlyph, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("icongen: parse font: %w", err)
	}

	g := &FontGlyph{font: f, r: r}
	idx, err := f.GlyphIndex(&g.buffer, r)
	if err != nil {
		return nil, fmt.Errorf("icongen: glyph index %s: %w", glyphName(r), err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, glyphName(r))
	}
	g.index = idx
	return g, nil
}

// LoadFontGlyph reads a font file and looks up r.
func LoadFontGlyph(path string, r rune) (*FontGlyph, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("icongen: read font: %w", err)
	}
	return NewFontGlyph(data, r)
}

// Rune implements Glyph.
func (g *FontGlyph) Rune() rune { return g.r }

// Outline implements Glyph. The glyph is scaled uniformly so its larger
// dimension spans the box, then centered. Glyphs without an outline, such
// as a space, return an empty path.
func (g *FontGlyph) Outline(box float64) (*Path, error) {
	ppem := fixed.Int26_6(math.Round(box * 64))
	segments, err := g.font.LoadGlyph(&g.buffer, g.index, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("%w: %s has no outline", ErrGlyphNotFound, glyphName(g.r))
		}
		return nil, fmt.Errorf("icongen: load glyph %s: %w", glyphName(g.r), err)
	}

	raw := &Path{}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p := fixedPoint(seg.Args[0])
			raw.MoveTo(p.X, p.Y)
		case sfnt.SegmentOpLineTo:
			p := fixedPoint(seg.Args[0])
			raw.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			c, p := fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1])
			raw.QuadTo(c.X, c.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			c1, c2, p := fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2])
			raw.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if raw.Empty() {
		return raw, nil
	}
	raw.Close()

	lo, hi := raw.Bounds()
	w, h := hi.X-lo.X, hi.Y-lo.Y
	extent := math.Max(w, h)
	if extent <= 0 {
		return &Path{}, nil
	}
	s := box / extent
	dx := (box-w*s)/2 - lo.X*s
	dy := (box-h*s)/2 - lo.Y*s
	return raw.Transform(s, dx, dy), nil
}

// fixedPoint converts a 26.6 fixed-point point to pixels.
func fixedPoint(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
