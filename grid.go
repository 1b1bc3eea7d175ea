package gridview

// DrawGridLines strokes the cell boundaries in the grid color, offset by half
// a pixel so 1px lines land on pixel centers. A grid with zero-size cells
// draws nothing.
func (r *Renderer) DrawGridLines() {
	g := r.geom
	if g.Degenerate() {
		return
	}
	maxX := float64(g.CellWidth * g.GridWidth)
	maxY := float64(g.CellHeight * g.GridHeight)

	r.surface.ClearPath()
	for y := 0; y <= g.CellHeight*g.GridHeight; y += g.CellHeight {
		r.surface.MoveTo(0, float64(y)+0.5)
		r.surface.LineTo(maxX, float64(y)+0.5)
	}
	for x := 0; x <= g.CellWidth*g.GridWidth; x += g.CellWidth {
		r.surface.MoveTo(float64(x)+0.5, 0)
		r.surface.LineTo(float64(x)+0.5, maxY)
	}
	r.surface.SetColor(r.gridColor)
	r.check("stroke", r.surface.Stroke())
}
