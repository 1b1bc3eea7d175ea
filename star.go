package gridview

import (
	"math"

	"github.com/gogpu/gg"
)

// MaxStarSpikes is the largest spike count a star is drawn with. Stars with
// more spikes are treated as malformed and paint nothing.
const MaxStarSpikes = 1024

// starPoints returns the 2n vertices of an n-spike star centered on (cx, cy).
// Vertices alternate between the outer radius and outer·inset, starting at
// the top and proceeding clockwise in steps of π/n.
func starPoints(cx, cy, outer, inset float64, n int) []gg.Point {
	inner := outer * inset
	pts := make([]gg.Point, 0, 2*n)
	for k := range 2 * n {
		rad := outer
		if k%2 == 1 {
			rad = inner
		}
		sin, cos := math.Sincos(float64(k) * math.Pi / float64(n))
		pts = append(pts, gg.Pt(cx+rad*sin, cy-rad*cos))
	}
	return pts
}

// drawStar fills an n-spike star when requested. An unfilled star paints
// nothing: stars are never stroked and carry no text.
func (r *Renderer) drawStar(s Star, row int) {
	outer := s.Scale * r.geom.MaxRadius
	if !s.Filled || !positive(outer) || !finite(s.Inset) {
		return
	}
	if s.Spikes < 1 || s.Spikes > MaxStarSpikes {
		Logger().Debug("gridview: star spikes out of range", "spikes", s.Spikes)
		return
	}
	cx, cy := r.geom.CellCenter(s.X, row)

	pts := starPoints(cx, cy, outer, s.Inset, s.Spikes)
	r.surface.ClearPath()
	r.surface.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		r.surface.LineTo(pt.X, pt.Y)
	}
	r.surface.ClosePath()
	r.surface.SetColor(r.color(s.Color))
	r.check("fill", r.surface.Fill())
}
