package icongen

import (
	"math"
	"testing"
)

func TestPathEmpty(t *testing.T) {
	var nilPath *Path
	if !nilPath.Empty() {
		t.Error("nil path should be empty")
	}

	p := &Path{}
	if !p.Empty() {
		t.Error("zero path should be empty")
	}
	p.MoveTo(1, 1)
	p.Close()
	if !p.Empty() {
		t.Error("path with only MoveTo and Close should be empty")
	}
	p.LineTo(2, 2)
	if p.Empty() {
		t.Error("path with LineTo should not be empty")
	}
}

func TestCircleBounds(t *testing.T) {
	lo, hi := Circle(10, 20, 5).Bounds()
	if lo != (Point{5, 15}) || hi != (Point{15, 25}) {
		t.Errorf("Bounds() = %v, %v, want {5 15}, {15 25}", lo, hi)
	}
}

func TestPathTransform(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.QuadTo(1, 2, 3, 4)
	p.Close()

	q := p.Transform(2, 10, -10)
	lo, hi := q.Bounds()
	if lo != (Point{10, -10}) || hi != (Point{16, -2}) {
		t.Errorf("Transform bounds = %v, %v, want {10 -10}, {16 -2}", lo, hi)
	}

	// The source path is unchanged.
	lo, hi = p.Bounds()
	if lo != (Point{0, 0}) || hi != (Point{3, 4}) {
		t.Errorf("source bounds = %v, %v, want {0 0}, {3 4}", lo, hi)
	}

	r := p.Translate(-1, 1)
	lo, _ = r.Bounds()
	if lo != (Point{-1, 1}) {
		t.Errorf("Translate lo = %v, want {-1 1}", lo)
	}
}

func TestEmptyPathBounds(t *testing.T) {
	lo, hi := (&Path{}).Bounds()
	if !math.IsInf(lo.X, 1) || !math.IsInf(hi.X, -1) {
		t.Errorf("empty Bounds() = %v, %v, want inverted infinities", lo, hi)
	}
}
