package icongen

import "errors"

// Sentinel errors for the icongen package.
var (
	// ErrInvalidSize is returned when an icon size is zero or negative.
	ErrInvalidSize = errors.New("icongen: size must be positive")

	// ErrSizeTooLarge is returned when an icon size exceeds the renderer's
	// maximum. It is reported before any pixel buffer is allocated.
	ErrSizeTooLarge = errors.New("icongen: size exceeds maximum")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("icongen: empty font data")

	// ErrGlyphNotFound is returned when a font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("icongen: glyph not found in font")
)
