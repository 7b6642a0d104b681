package sampler

import (
	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/expr"
)

// MarchingSquares tessellates the zero contour of f(x, y) over the
// viewport into an unordered list of world-space line segments.
//
// A dense (R+1)×(R+1) grid of function values is built first, then each
// of the R² cells contributes segments according to the sign pattern of
// its four corners:
//
//   - any non-finite corner skips the cell entirely — a documented
//     limitation that can leave visible gaps near domain boundaries
//   - all four corners on one side (cases 0 and 15) contribute nothing
//   - the remaining cases interpolate the zero crossing along each
//     sign-changing edge; the two ambiguous saddle cases emit both
//     diagonal corner cuts instead of resolving the true topology
//
// No polyline stitching or contour ordering is performed; renderers
// draw each segment independently. Complexity: O(R²) time and memory.
func MarchingSquares(f expr.Func, vp core.Viewport, scope core.Scope, opts ImplicitOptions) []core.Segment {
	if f == nil {
		return nil
	}
	res := opts.Resolution
	if res <= 0 {
		res = DefaultGridResolution
	}

	grid := sampleGrid(f, vp, scope, res)
	dx := vp.Width() / float64(res)
	dy := vp.Height() / float64(res)

	var segments []core.Segment
	for j := 0; j < res; j++ {
		for i := 0; i < res; i++ {
			x0 := vp.XMin + float64(i)*dx
			y0 := vp.YMin + float64(j)*dy
			cell := cellValues{
				bl: corner{core.Point{X: x0, Y: y0}, grid[j][i]},
				br: corner{core.Point{X: x0 + dx, Y: y0}, grid[j][i+1]},
				tr: corner{core.Point{X: x0 + dx, Y: y0 + dy}, grid[j+1][i+1]},
				tl: corner{core.Point{X: x0, Y: y0 + dy}, grid[j+1][i]},
			}
			segments = cell.appendSegments(segments)
		}
	}

	return segments
}

// sampleGrid evaluates f at every grid node, injecting both
// coordinates. Row index is the y step, column index the x step.
func sampleGrid(f expr.Func, vp core.Viewport, scope core.Scope, res int) [][]float64 {
	dx := vp.Width() / float64(res)
	dy := vp.Height() / float64(res)
	s := scope.Clone(2)

	grid := make([][]float64, res+1)
	for j := 0; j <= res; j++ {
		row := make([]float64, res+1)
		s["y"] = vp.YMin + float64(j)*dy
		for i := 0; i <= res; i++ {
			s["x"] = vp.XMin + float64(i)*dx
			row[i] = safeCall(f, s)
		}
		grid[j] = row
	}

	return grid
}

// corner couples a grid node position with its sampled value.
type corner struct {
	p core.Point
	v float64
}

// cellValues holds one cell's corners: bottom-left, bottom-right,
// top-right, top-left.
type cellValues struct {
	bl, br, tr, tl corner
}

// caseIndex builds the 4-bit sign pattern, bit set when the corner
// value is strictly positive: bl=1, br=2, tr=4, tl=8.
func (c cellValues) caseIndex() int {
	idx := 0
	if c.bl.v > 0 {
		idx |= 1
	}
	if c.br.v > 0 {
		idx |= 2
	}
	if c.tr.v > 0 {
		idx |= 4
	}
	if c.tl.v > 0 {
		idx |= 8
	}

	return idx
}

func (c cellValues) finite() bool {
	return core.IsFinite(c.bl.v) && core.IsFinite(c.br.v) &&
		core.IsFinite(c.tr.v) && core.IsFinite(c.tl.v)
}

// appendSegments emits the cell's contour segments onto segs.
func (c cellValues) appendSegments(segs []core.Segment) []core.Segment {
	if !c.finite() {
		return segs
	}

	// Zero crossings on the four edges, computed lazily per case below.
	bottom := func() core.Point { return interpolate(c.bl, c.br) }
	right := func() core.Point { return interpolate(c.br, c.tr) }
	top := func() core.Point { return interpolate(c.tl, c.tr) }
	left := func() core.Point { return interpolate(c.bl, c.tl) }

	seg := func(a, b core.Point) []core.Segment {
		return append(segs, core.Segment{A: a, B: b})
	}

	switch c.caseIndex() {
	case 0, 15:
		return segs
	case 1, 14:
		return seg(left(), bottom())
	case 2, 13:
		return seg(bottom(), right())
	case 3, 12:
		return seg(left(), right())
	case 4, 11:
		return seg(top(), right())
	case 6, 9:
		return seg(bottom(), top())
	case 7, 8:
		return seg(left(), top())
	case 5:
		// Saddle: bl and tr agree against br and tl. Emit both diagonal
		// corner cuts — the topology stays unresolved on purpose.
		segs = seg(left(), top())

		return append(segs, core.Segment{A: bottom(), B: right()})
	case 10:
		// The mirrored saddle: br and tl agree against bl and tr.
		segs = seg(left(), bottom())

		return append(segs, core.Segment{A: top(), B: right()})
	}

	return segs
}

// interpolate locates the zero crossing on the edge between two
// corners by linear interpolation. When the corner values are within
// interpEpsilon of each other the division is unstable, so the edge
// midpoint is used instead.
func interpolate(a, b corner) core.Point {
	diff := a.v - b.v
	if diff < interpEpsilon && diff > -interpEpsilon {
		return core.Point{X: (a.p.X + b.p.X) / 2, Y: (a.p.Y + b.p.Y) / 2}
	}
	t := a.v / diff

	return core.Point{
		X: a.p.X + t*(b.p.X-a.p.X),
		Y: a.p.Y + t*(b.p.Y-a.p.Y),
	}
}
