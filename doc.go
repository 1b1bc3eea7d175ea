// Package gridview paints agent-based model portrayals onto a 2D raster surface.
//
// # Overview
//
// A simulation emits, once per step, a [Frame]: a mapping from layer index to
// an ordered list of shape descriptors (rectangles, circles, arrowheads, stars
// and named images). A [Renderer] converts grid cells to pixel rectangles,
// flips the vertical axis so that row 0 is at the bottom, and dispatches every
// descriptor to its drawer.
//
// # Quick Start
//
//	dc := gg.NewContext(500, 500)
//	r := gridview.NewRenderer(dc, 500, 500, 10, 10)
//
//	frame, err := gridview.DecodeFrame(data)
//	if err != nil {
//	    return err
//	}
//	r.DrawFrame(frame)
//
//	// Image descriptors paint once their resource has loaded.
//	if err := r.Wait(ctx); err != nil {
//	    return err
//	}
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. *gg.Context from
// github.com/gogpu/gg satisfies it directly; the recording sub-package
// provides a command recorder for headless inspection.
//
// # Coordinate System
//
// Grid coordinates grow right and up, with (0, 0) in the bottom-left cell.
// Surface coordinates grow right and down. Each descriptor's row is flipped
// exactly once, when it is dispatched.
//
// # Threading
//
// A Renderer and its Surface belong to a single goroutine. Image resources are
// decoded on background goroutines, but their paint continuations only run on
// the caller's goroutine from [Renderer.RunPending] or [Renderer.Wait].
package gridview
