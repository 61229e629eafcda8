package icongen

import "math"

// kappa is the cubic Bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opQuadTo
	opCubeTo
	opClose
)

// segment is one path operation. Unused points are zero.
// For curves the control points come first and the end point last.
type segment struct {
	op  pathOp
	pts [3]Point
}

// Path is a fillable outline in pixel coordinates.
// The zero value is an empty path ready to use.
type Path struct {
	segs []segment
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, segment{op: opMoveTo, pts: [3]Point{{x, y}}})
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, segment{op: opLineTo, pts: [3]Point{{x, y}}})
}

// QuadTo adds a quadratic Bezier curve with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, segment{op: opQuadTo, pts: [3]Point{{cx, cy}, {x, y}}})
}

// CubeTo adds a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, segment{op: opCubeTo, pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, segment{op: opClose})
}

// Empty reports whether the path has no drawing operations.
func (p *Path) Empty() bool {
	if p == nil {
		return true
	}
	for _, s := range p.segs {
		if s.op != opMoveTo && s.op != opClose {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of every point in the path, control
// points included. The box always contains the filled area.
func (p *Path) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, s := range p.segs {
		for _, pt := range s.pts[:s.op.numPoints()] {
			lo.X = math.Min(lo.X, pt.X)
			lo.Y = math.Min(lo.Y, pt.Y)
			hi.X = math.Max(hi.X, pt.X)
			hi.Y = math.Max(hi.Y, pt.Y)
		}
	}
	return lo, hi
}

// Transform returns a copy of the path with every point mapped to
// (x*scale + dx, y*scale + dy).
func (p *Path) Transform(scale, dx, dy float64) *Path {
	out := &Path{segs: make([]segment, len(p.segs))}
	for i, s := range p.segs {
		for j := 0; j < s.op.numPoints(); j++ {
			s.pts[j] = Point{s.pts[j].X*scale + dx, s.pts[j].Y*scale + dy}
		}
		out.segs[i] = s
	}
	return out
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	return p.Transform(1, dx, dy)
}

func (op pathOp) numPoints() int {
	switch op {
	case opMoveTo, opLineTo:
		return 1
	case opQuadTo:
		return 2
	case opCubeTo:
		return 3
	default:
		return 0
	}
}

// Circle returns a closed circular path built from four cubic curves.
func Circle(cx, cy, r float64) *Path {
	k := r * kappa
	p := &Path{}
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}
