package icongen

import (
	"fmt"
	"io"
	"path/filepath"
)

// DefaultSizes are the icon sizes a web app manifest expects.
var DefaultSizes = []int{192, 512}

// IconName returns the file name for an icon of the given size.
func IconName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// Generate renders one icon per size into dir, in order, and prints a
// "Created icon-<size>.png" line to w after each file is written.
// It stops at the first failure. dir is not created.
// A nil renderer uses the default style.
func Generate(r *Renderer, dir string, sizes []int, w io.Writer) error {
	if r == nil {
		r = NewRenderer()
	}
	for _, size := range sizes {
		name := IconName(size)
		if err := r.Render(size, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("icongen: generate %s: %w", name, err)
		}
		if _, err := fmt.Fprintf(w, "Created %s\n", name); err != nil {
			return fmt.Errorf("icongen: report %s: %w", name, err)
		}
	}
	return nil
}
