package gridview

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is the drawing context a Renderer paints on.
//
// It follows the immediate-mode model of an HTML canvas: a current path is
// built with MoveTo, LineTo and the shape helpers, then painted with Fill or
// Stroke in the current color. *gg.Context satisfies Surface.
type Surface interface {
	// Clear resets every pixel to transparent.
	Clear()
	// ClearPath discards the current path.
	ClearPath()

	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetFont(face text.Face)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)

	// Fill and Stroke paint the current path and clear it.
	Fill() error
	Stroke() error
	// StrokePreserve strokes the current path and keeps it for a following Fill.
	StrokePreserve() error

	// DrawStringAnchored draws s so that the anchor (ax, ay), in units of the
	// text's extent, lands on (x, y).
	DrawStringAnchored(s string, x, y, ax, ay float64)
	DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions)
}

var _ Surface = (*gg.Context)(nil)
