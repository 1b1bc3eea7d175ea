// Package recording provides a drawing surface that records commands
// instead of rasterizing pixels.
//
// A Recorder implements the same immediate-mode method set as gg.Context,
// so a gridview.Renderer can paint onto it directly. The recorded commands
// are plain typed structs that can be inspected (which path was filled, in
// which color, where text was anchored) or replayed onto a real surface.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(500, 500)
//	r := gridview.NewRenderer(rec, 500, 500, 10, 10)
//	r.DrawFrame(frame)
//
//	for _, cmd := range rec.Commands() {
//	    if fill, ok := cmd.(recording.FillPathCommand); ok {
//	        fmt.Println(fill.Path.Points(), fill.Color)
//	    }
//	}
//
// # Playback
//
// A Recording replays onto any Target, for example a gg.Context:
//
//	dc := gg.NewContext(500, 500)
//	if err := rec.FinishRecording().Playback(dc); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// A Recorder is not safe for concurrent use. A finished Recording is
// immutable and may be replayed from several goroutines onto distinct targets.
package recording
