// Package icongen procedurally draws square PNG icons for a web app manifest.
//
// # Overview
//
// Each icon is a dark background, a soft radial gradient disc and a centered
// four-pointed star. The disc is built by layering filled circles of
// descending radius, each a little more opaque than the one beneath, so the
// color brightens toward the center.
//
// # Quick Start
//
//	r := icongen.NewRenderer()
//
//	// One icon
//	if err := r.Render(192, "icon-192.png"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// The manifest pair, 192 and 512, into ./public
//	if err := icongen.Generate(r, "public", icongen.DefaultSizes, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Glyphs
//
// The default StarGlyph is a vector outline and needs no font. FontGlyph
// draws any rune from an OpenType or TrueType font file instead.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X increases right and Y increases
// down. The canvas midpoint is (size/2, size/2) in continuous coordinates.
package icongen
