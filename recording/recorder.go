package recording

import (
	"image/color"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Recorder captures drawing operations as commands.
// It mirrors the gg.Context drawing API but generates commands
// instead of rasterizing pixels.
//
// Painting an empty path records nothing, as with gg.Context.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// Current path being built
	path Path

	// Current state
	color     gg.RGBA
	lineWidth float64
	face      text.Face
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with a black color and a 1px line width.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		color:     gg.Black,
		lineWidth: 1,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many recorded commands have the given type.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards the recorded commands, keeping the current state.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.path = nil
}

// FinishRecording returns an immutable Recording of the commands so far.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clone(r.commands),
	}
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Clear records a clear of the whole surface.
func (r *Recorder) Clear() {
	r.commands = append(r.commands, ClearCommand{})
}

// SetColor sets the color of subsequent fills, strokes and text.
func (r *Recorder) SetColor(c color.Color) {
	if rgba, ok := c.(gg.RGBA); ok {
		r.color = rgba
		return
	}
	r.color = gg.FromColor(c)
}

// Color returns the current color.
func (r *Recorder) Color() gg.RGBA {
	return r.color
}

// SetLineWidth sets the stroke line width.
func (r *Recorder) SetLineWidth(width float64) {
	r.lineWidth = width
	r.commands = append(r.commands, SetLineWidthCommand{Width: width})
}

// SetFont sets the text face.
func (r *Recorder) SetFont(face text.Face) {
	r.face = face
	r.commands = append(r.commands, SetFontCommand{Face: face})
}

// Font returns the current text face, or nil.
func (r *Recorder) Font() text.Face {
	return r.face
}

// --------------------------------------------------------------------------
// Path Construction
// --------------------------------------------------------------------------

// MoveTo starts a new subpath at (x, y).
func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, Element{Verb: VerbMoveTo, X: x, Y: y})
}

// LineTo adds a line to (x, y).
func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, Element{Verb: VerbLineTo, X: x, Y: y})
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.path = append(r.path, Element{Verb: VerbClose})
}

// ClearPath discards the current path.
func (r *Recorder) ClearPath() {
	r.path = nil
}

// DrawRectangle adds a rectangle to the current path.
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.path = append(r.path, Element{Verb: VerbRect, X: x, Y: y, W: w, H: h})
}

// DrawCircle adds a circle to the current path.
func (r *Recorder) DrawCircle(x, y, radius float64) {
	r.path = append(r.path, Element{Verb: VerbCircle, X: x, Y: y, R: radius})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Fill fills the current path and clears it.
func (r *Recorder) Fill() error {
	r.fill()
	r.path = nil
	return nil
}

// Stroke strokes the current path and clears it.
func (r *Recorder) Stroke() error {
	r.stroke()
	r.path = nil
	return nil
}

// StrokePreserve strokes the current path without clearing it.
func (r *Recorder) StrokePreserve() error {
	r.stroke()
	return nil
}

func (r *Recorder) fill() {
	if len(r.path) == 0 {
		return
	}
	r.commands = append(r.commands, FillPathCommand{
		Path:  slices.Clone(r.path),
		Color: r.color,
	})
}

func (r *Recorder) stroke() {
	if len(r.path) == 0 {
		return
	}
	r.commands = append(r.commands, StrokePathCommand{
		Path:      slices.Clone(r.path),
		Color:     r.color,
		LineWidth: r.lineWidth,
	})
}

// DrawStringAnchored records anchored text in the current color.
func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.commands = append(r.commands, DrawTextCommand{
		Text:  s,
		X:     x,
		Y:     y,
		AX:    ax,
		AY:    ay,
		Color: r.color,
	})
}

// DrawImageEx records an image draw.
func (r *Recorder) DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions) {
	r.commands = append(r.commands, DrawImageCommand{Image: img, Options: opts})
}

// --------------------------------------------------------------------------
// Playback
// --------------------------------------------------------------------------

// Target is a surface a Recording can be replayed onto. *gg.Context
// satisfies Target.
type Target interface {
	Clear()
	ClearPath()
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetFont(face text.Face)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error
	DrawStringAnchored(s string, x, y, ax, ay float64)
	DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions)
}

var _ Target = (*gg.Context)(nil)

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording onto t. It stops at the first paint error.
func (r *Recording) Playback(t Target) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			t.Clear()
		case SetLineWidthCommand:
			t.SetLineWidth(c.Width)
		case SetFontCommand:
			if c.Face != nil {
				t.SetFont(c.Face)
			}
		case FillPathCommand:
			c.Path.replay(t)
			t.SetColor(c.Color)
			if err := t.Fill(); err != nil {
				return err
			}
		case StrokePathCommand:
			c.Path.replay(t)
			t.SetColor(c.Color)
			t.SetLineWidth(c.LineWidth)
			if err := t.Stroke(); err != nil {
				return err
			}
		case DrawTextCommand:
			t.SetColor(c.Color)
			t.DrawStringAnchored(c.Text, c.X, c.Y, c.AX, c.AY)
		case DrawImageCommand:
			t.DrawImageEx(c.Image, c.Options)
		}
	}
	return nil
}
