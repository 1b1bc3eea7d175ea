package recording

import "github.com/gogpu/gg"

// Verb identifies a path element.
type Verb uint8

const (
	VerbMoveTo Verb = iota // Start a subpath at (X, Y)
	VerbLineTo             // Line to (X, Y)
	VerbClose              // Close the current subpath
	VerbRect               // Rectangle at (X, Y) of size W×H
	VerbCircle             // Circle centered on (X, Y) of radius R
)

// Element is one recorded path element. Which fields are meaningful depends
// on Verb.
type Element struct {
	Verb Verb
	X, Y float64
	W, H float64
	R    float64
}

// Path is a recorded path: the elements issued between two paint operations.
type Path []Element

// Points returns the MoveTo and LineTo vertices of the path in order.
func (p Path) Points() []gg.Point {
	var pts []gg.Point
	for _, e := range p {
		if e.Verb == VerbMoveTo || e.Verb == VerbLineTo {
			pts = append(pts, gg.Pt(e.X, e.Y))
		}
	}
	return pts
}

// Count returns the number of elements with the given verb.
func (p Path) Count(v Verb) int {
	n := 0
	for _, e := range p {
		if e.Verb == v {
			n++
		}
	}
	return n
}

// replay issues the path onto a target, starting a fresh path.
func (p Path) replay(t Target) {
	t.ClearPath()
	for _, e := range p {
		switch e.Verb {
		case VerbMoveTo:
			t.MoveTo(e.X, e.Y)
		case VerbLineTo:
			t.LineTo(e.X, e.Y)
		case VerbClose:
			t.ClosePath()
		case VerbRect:
			t.DrawRectangle(e.X, e.Y, e.W, e.H)
		case VerbCircle:
			t.DrawCircle(e.X, e.Y, e.R)
		}
	}
}
