package gridview

import (
	"context"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer paints portrayal frames onto a Surface.
//
// A Renderer is bound to one surface and one grid size. It is not safe for
// concurrent use; image loads complete in the background but only paint
// from RunPending or Wait.
type Renderer struct {
	surface   Surface
	geom      Geometry
	gridColor gg.RGBA
	gridLines bool
	hidden    map[int]bool
	queue     *taskQueue
	images    *imageLoader
}

// NewRenderer creates a renderer painting a gridWidth×gridHeight grid onto a
// width×height pixel surface. It sets the surface's line width and font.
//
// Example:
//
//	dc := gg.NewContext(500, 500)
//	r := gridview.NewRenderer(dc, 500, 500, 10, 10, gridview.WithGridLines(true))
func NewRenderer(surface Surface, width, height, gridWidth, gridHeight int, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gridColor, err := ParseColor(o.gridColor)
	if err != nil {
		Logger().Debug("gridview: invalid grid color, using default", "color", o.gridColor, "err", err)
		gridColor = gg.Hex(DefaultGridColor)
	}

	queue := newTaskQueue()
	r := &Renderer{
		surface:   surface,
		geom:      NewGeometry(width, height, gridWidth, gridHeight),
		gridColor: gridColor,
		gridLines: o.gridLines,
		hidden:    make(map[int]bool),
		queue:     queue,
		images:    newImageLoader(o.resources, o.loadConcurrency, o.cacheCapacity, queue),
	}

	surface.SetLineWidth(1)
	face := o.face
	if face == nil {
		face = defaultFace(o.fontSize)
	}
	if face != nil {
		surface.SetFont(face)
	}
	return r
}

// Geometry returns the cell layout the renderer draws with.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// ResetCanvas clears the surface to transparent and discards any open path.
// Image loads still in flight are unaffected and paint when drained.
func (r *Renderer) ResetCanvas() {
	r.surface.Clear()
	r.surface.ClearPath()
}

// DrawFrame repaints the surface with a whole frame: it resets the canvas,
// draws the grid overlay when enabled, then draws every visible layer in
// ascending order.
func (r *Renderer) DrawFrame(f Frame) {
	r.ResetCanvas()
	if r.gridLines {
		r.DrawGridLines()
	}
	for _, layer := range f.Layers() {
		if r.hidden[layer] {
			continue
		}
		r.DrawLayer(f[layer])
	}
}

// HideLayer excludes a layer from subsequent DrawFrame calls.
func (r *Renderer) HideLayer(layer int) {
	r.hidden[layer] = true
}

// ShowLayer re-includes a layer hidden with HideLayer.
func (r *Renderer) ShowLayer(layer int) {
	delete(r.hidden, layer)
}

// LayerHidden reports whether a layer is hidden.
func (r *Renderer) LayerHidden(layer int) bool {
	return r.hidden[layer]
}

// RunPending paints the continuations of completed image loads and returns
// how many ran. It does not block.
func (r *Renderer) RunPending() int {
	return r.queue.drain()
}

// Wait paints image continuations as their loads complete, returning once
// no load is in flight or when ctx is done.
func (r *Renderer) Wait(ctx context.Context) error {
	return r.queue.wait(ctx)
}

// check logs a surface error. Drawing is best-effort; one failed paint never
// stops the rest of the frame.
func (r *Renderer) check(op string, err error) {
	if err != nil {
		Logger().Warn("gridview: surface error", "op", op, "err", err)
	}
}

// color resolves a CSS color, falling back to black.
func (r *Renderer) color(css string) gg.RGBA {
	c, err := ParseColor(css)
	if err != nil {
		Logger().Debug("gridview: invalid color, using black", "color", css, "err", err)
		return gg.Black
	}
	return c
}

var (
	goRegularOnce sync.Once
	goRegular     *text.FontSource
)

// defaultFace returns Go Regular at the given size, or nil if the embedded
// font could not be parsed.
func defaultFace(size float64) text.Face {
	goRegularOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("gridview: default font unavailable", "err", err)
			return
		}
		goRegular = src
	})
	if goRegular == nil {
		return nil
	}
	return goRegular.Face(size)
}
