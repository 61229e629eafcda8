package icongen

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// StarRune is the four-pointed star drawn by StarGlyph.
const StarRune = '✦'

// Glyph produces the outline of the decorative mark drawn over the gradient.
type Glyph interface {
	// Rune identifies the glyph for logging and error messages.
	Rune() rune

	// Outline returns the glyph outline fitted into a box×box square whose
	// top-left corner is the origin.
	Outline(box float64) (*Path, error)
}

// StarGlyph is the built-in four-pointed star. It needs no font resource.
type StarGlyph struct {
	// Waist is the distance from the center to each arm's control point,
	// as a fraction of the half box. Zero uses the default of 0.12.
	Waist float64
}

// Rune implements Glyph.
func (StarGlyph) Rune() rune { return StarRune }

// Outline implements Glyph. The four tips touch the midpoints of the box
// edges; the arms curve inward through the control points near the center.
func (g StarGlyph) Outline(box float64) (*Path, error) {
	waist := g.Waist
	if waist <= 0 {
		waist = 0.12
	}
	h := box / 2
	k := h * waist

	p := &Path{}
	p.MoveTo(h, 0)
	p.QuadTo(h+k, h-k, box, h)
	p.QuadTo(h+k, h+k, h, box)
	p.QuadTo(h-k, h+k, 0, h)
	p.QuadTo(h-k, h-k, h, 0)
	p.Close()
	return p, nil
}

// glyphName formats r as "U+XXXX NAME" for log records and errors.
func glyphName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return fmt.Sprintf("U+%04X %s", r, name)
	}
	return fmt.Sprintf("U+%04X", r)
}
