package icongen

import (
	"math"
	"testing"
)

func TestGradientModeString(t *testing.T) {
	tests := []struct {
		mode GradientMode
		want string
	}{
		{GradientRings, "rings"},
		{GradientAnalytic, "analytic"},
		{GradientMode(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("GradientMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestRingAlpha(t *testing.T) {
	tests := []struct {
		name     string
		i, half  int
		strength float64
		want     uint8
	}{
		{"outermost ring is invisible", 96, 96, 0.3, 0},
		{"innermost ring of 192", 1, 96, 0.3, 76},
		{"midway", 48, 96, 0.3, 38},
		{"innermost ring of 512", 1, 256, 0.3, 76},
		{"odd size 7", 1, 3, 0.3, 51},
		{"degenerate half", 1, 0, 0.3, 0},
		{"clamped high", 1, 96, 5, 255},
		{"clamped low", 1, 96, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringAlpha(tt.i, tt.half, tt.strength); got != tt.want {
				t.Errorf("ringAlpha(%d, %d, %v) = %d, want %d", tt.i, tt.half, tt.strength, got, tt.want)
			}
		})
	}
}

func TestRingAlphaMonotonic(t *testing.T) {
	for _, size := range []int{3, 7, 192, 511, 512} {
		half := size / 2
		prev := -1
		for i := half; i >= 1; i-- {
			a := int(ringAlpha(i, half, 0.3))
			if a < prev {
				t.Fatalf("size %d: ringAlpha(%d) = %d < previous %d", size, i, a, prev)
			}
			prev = a
		}
	}
}

func TestDrawGradientRingsCount(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 0},
		{2, 0},
		{16, 7},
		{192, 95},
	}

	for _, tt := range tests {
		c, _ := NewCanvas(tt.size)
		c.Clear(DefaultBackground)
		if got := drawGradientRings(c, DefaultGradientColor, 0.3); got != tt.want {
			t.Errorf("size %d: drew %d circles, want %d", tt.size, got, tt.want)
		}
	}
}

func TestDrawGradientRingsBrightensTowardCenter(t *testing.T) {
	c, _ := NewCanvas(192)
	c.Clear(DefaultBackground)
	drawGradientRings(c, DefaultGradientColor, 0.3)

	center := c.Pixel(96, 96)
	mid := c.Pixel(96, 48)
	rim := c.Pixel(96, 2)
	if !(center.B > mid.B && mid.B > rim.B) {
		t.Errorf("blue channel should fall off from center: center=%v mid=%v rim=%v", center, mid, rim)
	}
	if corner := c.Pixel(0, 0); corner != DefaultBackground {
		t.Errorf("corner = %v, want background", corner)
	}
}

func TestDrawGradientAnalytic(t *testing.T) {
	c, _ := NewCanvas(192)
	c.Clear(DefaultBackground)
	drawGradientAnalytic(c, DefaultGradientColor, 0.3)

	for _, p := range [][2]int{{0, 0}, {191, 0}, {0, 191}, {191, 191}} {
		if got := c.Pixel(p[0], p[1]); got != DefaultBackground {
			t.Errorf("corner (%d, %d) = %v, want background", p[0], p[1], got)
		}
	}
	// alpha 76 over the background at the center.
	if got := c.Pixel(96, 96); got != (Color{37, 40, 90, 255}) {
		t.Errorf("center = %v, want {37 40 90 255}", got)
	}

	tiny, _ := NewCanvas(1)
	tiny.Clear(DefaultBackground)
	drawGradientAnalytic(tiny, DefaultGradientColor, 0.3)
	if got := tiny.Pixel(0, 0); got != DefaultBackground {
		t.Errorf("1x1 analytic pixel = %v, want background", got)
	}
}

func TestRadialT(t *testing.T) {
	center := Point{X: 10, Y: 10}
	tests := []struct {
		x, y float64
		want float64
	}{
		{10, 10, 0},
		{15, 10, 0.5},
		{10, 0, 1},
		{20, 20, math.Sqrt2},
	}
	for _, tt := range tests {
		if got := radialT(tt.x, tt.y, center, 10); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("radialT(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
