package gridview

import (
	"math"

	"github.com/gogpu/gg"
)

// arrowPoints returns the four vertices of an arrowhead of radius rad centered
// on (cx, cy) and pointing along (hx, hy), with +y up.
//
// The four cardinal headings use fixed vertex tables; every other heading
// uses the rotated form. The two do not agree exactly at the cardinal angles
// and both are kept as is.
func arrowPoints(cx, cy, hx, hy, rad float64) [4]gg.Point {
	switch {
	case hx == 0 && hy == 1:
		return [4]gg.Point{
			gg.Pt(cx, cy-rad),
			gg.Pt(cx-rad, cy+rad),
			gg.Pt(cx, cy+0.5*rad),
			gg.Pt(cx+rad, cy+rad),
		}
	case hx == 1 && hy == 0:
		return [4]gg.Point{
			gg.Pt(cx+rad, cy),
			gg.Pt(cx-rad, cy-rad),
			gg.Pt(cx-0.5*rad, cy),
			gg.Pt(cx-rad, cy+rad),
		}
	case hx == 0 && hy == -1:
		return [4]gg.Point{
			gg.Pt(cx, cy+rad),
			gg.Pt(cx-rad, cy-rad),
			gg.Pt(cx, cy-0.5*rad),
			gg.Pt(cx+rad, cy-rad),
		}
	case hx == -1 && hy == 0:
		return [4]gg.Point{
			gg.Pt(cx-rad, cy),
			gg.Pt(cx+rad, cy-rad),
			gg.Pt(cx+0.5*rad, cy),
			gg.Pt(cx+rad, cy+rad),
		}
	}

	theta := -math.Atan2(hy, hx)
	sin, cos := math.Sincos(theta)
	return [4]gg.Point{
		gg.Pt(cx+cos*rad, cy+sin*rad),
		gg.Pt(cx-cos*rad+sin*rad, cy-sin*rad-cos*rad),
		gg.Pt(cx-0.5*cos*rad, cy-0.5*sin*rad),
		gg.Pt(cx-cos*rad-sin*rad, cy-sin*rad+cos*rad),
	}
}

// drawArrowHead outlines the arrowhead, fills it when requested, then paints
// its text.
func (r *Renderer) drawArrowHead(s ArrowHead, row int) {
	rad := s.Scale * r.geom.MaxRadius
	if !positive(rad) || !finite(s.HeadingX) || !finite(s.HeadingY) {
		return
	}
	cx, cy := r.geom.CellCenter(s.X, row)
	c := r.color(s.Color)

	pts := arrowPoints(cx, cy, s.HeadingX, s.HeadingY, rad)
	r.surface.ClearPath()
	r.surface.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		r.surface.LineTo(pt.X, pt.Y)
	}
	r.surface.ClosePath()
	r.surface.SetColor(c)
	r.strokeThenFill(s.Filled)
	r.drawText(s.Text, s.TextColor, c, cx, cy)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
