package icongen

// DefaultMaxSize is the largest icon side length accepted by default.
const DefaultMaxSize = 8192

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default PWA icon style
//	r := icongen.NewRenderer()
//
//	// Exact per-pixel gradient with a font glyph
//	g, err := icongen.LoadFontGlyph("Symbols.ttf", '★')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := icongen.NewRenderer(
//	    icongen.WithGradientMode(icongen.GradientAnalytic),
//	    icongen.WithGlyph(g),
//	)
type Option func(*options)

// options holds the Renderer configuration.
type options struct {
	background       Color
	gradientColor    Color
	gradientStrength float64
	gradientMode     GradientMode
	glyph            Glyph
	glyphColor       Color
	glyphScale       float64
	maxSize          int
}

// defaultOptions returns the default icon style.
func defaultOptions() options {
	return options{
		background:       DefaultBackground,
		gradientColor:    DefaultGradientColor,
		gradientStrength: 0.3,
		gradientMode:     GradientRings,
		glyph:            StarGlyph{},
		glyphColor:       DefaultGlyphColor,
		glyphScale:       0.45,
		maxSize:          DefaultMaxSize,
	}
}

// WithBackground sets the opaque fill drawn before anything else.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithGradientColor sets the gradient color. Its alpha is ignored; the
// gradient computes alpha itself.
func WithGradientColor(c Color) Option {
	return func(o *options) {
		o.gradientColor = c
	}
}

// WithGradientStrength scales the gradient alpha. The default is 0.3, so the
// innermost ring reaches roughly 30% opacity.
func WithGradientStrength(s float64) Option {
	return func(o *options) {
		o.gradientStrength = s
	}
}

// WithGradientMode selects between ring layering and per-pixel evaluation.
func WithGradientMode(m GradientMode) Option {
	return func(o *options) {
		o.gradientMode = m
	}
}

// WithGlyph replaces the default star. A nil glyph disables the glyph.
func WithGlyph(g Glyph) Option {
	return func(o *options) {
		o.glyph = g
	}
}

// WithGlyphColor sets the glyph fill color.
func WithGlyphColor(c Color) Option {
	return func(o *options) {
		o.glyphColor = c
	}
}

// WithGlyphScale sets the glyph box side as a fraction of the icon size.
func WithGlyphScale(s float64) Option {
	return func(o *options) {
		o.glyphScale = s
	}
}

// WithMaxSize sets the largest accepted icon size.
// Values below one keep the default.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}
