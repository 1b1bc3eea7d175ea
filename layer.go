package gridview

import "fmt"

// DrawLayer paints a layer's descriptors in order, later ones over earlier
// ones. Each descriptor is drawn in isolation: a descriptor that panics is
// logged and skipped. The descriptors are not modified.
func (r *Renderer) DrawLayer(shapes []Shape) {
	if r.geom.Degenerate() {
		return
	}
	for _, s := range shapes {
		r.drawShape(s)
	}
}

func (r *Renderer) drawShape(s Shape) {
	if s == nil {
		return
	}
	p := s.portrayal()
	defer func() {
		if v := recover(); v != nil {
			Logger().Warn("gridview: descriptor panicked",
				"kind", Kind(s), "x", p.X, "y", p.Y, "panic", fmt.Sprint(v))
		}
	}()

	row := r.geom.FlipY(p.Y)
	switch s := s.(type) {
	case Rect:
		r.drawRect(s, row)
	case Circle:
		r.drawCircle(s, row)
	case ArrowHead:
		r.drawArrowHead(s, row)
	case Star:
		r.drawStar(s, row)
	case CustomImage:
		r.drawImage(s, row)
	default:
		Logger().Debug("gridview: unsupported shape type", "type", fmt.Sprintf("%T", s))
	}
}
