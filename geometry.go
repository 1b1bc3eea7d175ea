package gridview

// Geometry maps grid cells to pixel rectangles on a surface.
// It is immutable; build a new one when the surface or grid size changes.
type Geometry struct {
	// Width and Height are the surface dimensions in pixels.
	Width, Height int

	// GridWidth and GridHeight are the grid dimensions in cells.
	GridWidth, GridHeight int

	// CellWidth and CellHeight are the pixel dimensions of one cell,
	// floor(Width/GridWidth) and floor(Height/GridHeight).
	CellWidth, CellHeight int

	// MaxRadius is the radius of the largest circle inscribed in a cell,
	// min(CellWidth, CellHeight)/2 - 1. Circles, arrowheads and stars scale
	// against it so they stay round on non-square cells.
	MaxRadius float64
}

// NewGeometry computes the cell layout for a surface of width×height pixels
// showing a gridWidth×gridHeight grid. Non-positive dimensions produce zero
// sized cells.
func NewGeometry(width, height, gridWidth, gridHeight int) Geometry {
	g := Geometry{
		Width:      width,
		Height:     height,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
	}
	if width > 0 && gridWidth > 0 {
		g.CellWidth = width / gridWidth
	}
	if height > 0 && gridHeight > 0 {
		g.CellHeight = height / gridHeight
	}
	g.MaxRadius = float64(min(g.CellWidth, g.CellHeight))/2 - 1
	return g
}

// Degenerate reports whether cells have zero size, in which case nothing
// can be painted.
func (g Geometry) Degenerate() bool {
	return g.CellWidth <= 0 || g.CellHeight <= 0
}

// FlipY converts a grid row, counted from the bottom, to a surface row,
// counted from the top.
func (g Geometry) FlipY(y int) int {
	return g.GridHeight - y - 1
}

// CellCenter returns the pixel center of the cell in column x and surface
// row row. The row must already be flipped.
func (g Geometry) CellCenter(x, row int) (cx, cy float64) {
	cx = (float64(x) + 0.5) * float64(g.CellWidth)
	cy = (float64(row) + 0.5) * float64(g.CellHeight)
	return cx, cy
}
