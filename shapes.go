package gridview

import (
	"math"

	"github.com/gogpu/gg"
)

// positive reports whether v is a finite size greater than zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// drawRect paints a rectangle of w×h cells centered on the cell, filled or
// outlined, then its text.
func (r *Renderer) drawRect(s Rect, row int) {
	dx := s.W * float64(r.geom.CellWidth)
	dy := s.H * float64(r.geom.CellHeight)
	if !positive(dx) || !positive(dy) {
		return
	}
	cx, cy := r.geom.CellCenter(s.X, row)
	c := r.color(s.Color)

	r.surface.ClearPath()
	r.surface.DrawRectangle(cx-dx/2, cy-dy/2, dx, dy)
	r.surface.SetColor(c)
	if s.Filled {
		r.check("fill", r.surface.Fill())
	} else {
		r.check("stroke", r.surface.Stroke())
	}
	r.drawText(s.Text, s.TextColor, c, cx, cy)
}

// drawCircle outlines a circle of radius r·MaxRadius, fills it when
// requested, then paints its text.
func (r *Renderer) drawCircle(s Circle, row int) {
	radius := s.R * r.geom.MaxRadius
	if !positive(radius) {
		return
	}
	cx, cy := r.geom.CellCenter(s.X, row)
	c := r.color(s.Color)

	r.surface.ClearPath()
	r.surface.DrawCircle(cx, cy, radius)
	r.surface.SetColor(c)
	r.strokeThenFill(s.Filled)
	r.drawText(s.Text, s.TextColor, c, cx, cy)
}

// strokeThenFill strokes the current path and, when filled, fills it over
// the stroke. The path is consumed either way.
func (r *Renderer) strokeThenFill(filled bool) {
	if !filled {
		r.check("stroke", r.surface.Stroke())
		return
	}
	r.check("stroke", r.surface.StrokePreserve())
	r.check("fill", r.surface.Fill())
}

// drawText paints centered text. An empty css color uses fallback.
func (r *Renderer) drawText(s, css string, fallback gg.RGBA, cx, cy float64) {
	if s == "" {
		return
	}
	c := fallback
	if css != "" {
		c = r.color(css)
	}
	r.surface.SetColor(c)
	r.surface.DrawStringAnchored(s, cx, cy, 0.5, 0.5)
}

// drawImage schedules the named resource to be drawn over the cell, scaled
// and centered. Nothing is painted until the load completes and the task
// queue is drained.
func (r *Renderer) drawImage(s CustomImage, row int) {
	dw := float64(r.geom.CellWidth) * s.Scale
	dh := float64(r.geom.CellHeight) * s.Scale
	if !positive(dw) || !positive(dh) {
		return
	}
	cx, cy := r.geom.CellCenter(s.X, row)
	opts := gg.DrawImageOptions{
		X:             cx - dw/2,
		Y:             cy - dh/2,
		DstWidth:      dw,
		DstHeight:     dh,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	}
	label, labelColor := s.Text, s.TextColor

	r.images.request(s.Name, func(img *gg.ImageBuf) {
		defer func() {
			if v := recover(); v != nil {
				Logger().Warn("gridview: image paint panicked", "name", s.Name, "panic", v)
			}
		}()
		r.surface.DrawImageEx(img, opts)
		r.drawText(label, labelColor, gg.Black, cx, cy)
	})
}
