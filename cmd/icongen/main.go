// Command icongen writes the web app manifest icons icon-192.png and
// icon-512.png into a directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/icongen"
)

func main() {
	var (
		out      = flag.String("out", ".", "output directory (must exist)")
		sizes    = flag.String("sizes", "192,512", "comma-separated icon sizes")
		fontPath = flag.String("font", "", "draw the glyph from this font file instead of the built-in star")
		glyph    = flag.String("glyph", string(icongen.StarRune), "glyph rune to draw with -font")
		analytic = flag.Bool("analytic", false, "compute the gradient per pixel instead of layering circles")
		bg       = flag.String("background", icongen.DefaultBackground.String(), "background color as hex")
		fg       = flag.String("glyph-color", icongen.DefaultGlyphColor.String(), "glyph color as hex")
		verbose  = flag.Bool("v", false, "log rendering stages to stderr")
	)
	flag.Parse()

	if *verbose {
		icongen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	list, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}

	background, err := icongen.ParseHex(*bg)
	if err != nil {
		log.Fatalf("Invalid -background: %v", err)
	}
	glyphColor, err := icongen.ParseHex(*fg)
	if err != nil {
		log.Fatalf("Invalid -glyph-color: %v", err)
	}

	opts := []icongen.Option{
		icongen.WithBackground(background),
		icongen.WithGlyphColor(glyphColor),
	}
	if *analytic {
		opts = append(opts, icongen.WithGradientMode(icongen.GradientAnalytic))
	}
	if *fontPath != "" {
		r, err := parseGlyph(*glyph)
		if err != nil {
			log.Fatalf("Invalid -glyph: %v", err)
		}
		g, err := icongen.LoadFontGlyph(*fontPath, r)
		if err != nil {
			log.Fatalf("Failed to load glyph: %v", err)
		}
		opts = append(opts, icongen.WithGlyph(g))
	}

	if err := icongen.Generate(icongen.NewRenderer(opts...), *out, list, os.Stdout); err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}
}

// parseSizes parses a comma-separated list of positive integers.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d is not positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}

// parseGlyph accepts a single character or a "U+XXXX" code point.
func parseGlyph(s string) (rune, error) {
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		n, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return 0, err
		}
		if !utf8.ValidRune(rune(n)) {
			return 0, fmt.Errorf("%q is not a valid code point", s)
		}
		return rune(n), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return r, nil
}
