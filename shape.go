package gridview

// Wire names of the shape kinds. Any other kind name refers to an image resource.
const (
	KindRect      = "rect"
	KindCircle    = "circle"
	KindArrowHead = "arrowHead"
	KindStar      = "star"
)

// Portrayal holds the fields common to every shape descriptor.
type Portrayal struct {
	// X is the grid column, counted from the left.
	X int
	// Y is the grid row, counted from the bottom.
	Y int

	// Color is a CSS color string used for fill and stroke.
	Color string

	// Filled selects filling over (or in addition to) stroking.
	Filled bool

	// Layer is the layer the descriptor was emitted on. It is informational;
	// the frame key decides the paint order.
	Layer int

	// Text is drawn centered on the cell after the shape. Empty draws nothing.
	Text string

	// TextColor is a CSS color string for Text. Empty falls back to Color.
	TextColor string
}

// Shape is a shape descriptor: one of Rect, Circle, ArrowHead, Star or CustomImage.
// The set is closed; drawers dispatch on it with a single type switch.
type Shape interface {
	portrayal() Portrayal
}

// Rect is an axis-aligned rectangle. W and H are fractions of the cell size.
type Rect struct {
	Portrayal
	W, H float64
}

// Circle is a circle centered on the cell. R is a fraction of the maximum
// inscribed radius.
type Circle struct {
	Portrayal
	R float64
}

// ArrowHead is a quadrilateral arrowhead pointing along (HeadingX, HeadingY),
// with +y pointing up. Scale is a fraction of the maximum inscribed radius.
type ArrowHead struct {
	Portrayal
	HeadingX, HeadingY float64
	Scale              float64
}

// Star is a star polygon with Spikes outer points. Scale sets the outer radius
// as a fraction of the maximum inscribed radius; Inset sets the inner radius
// as a fraction of the outer one. Stars carry no text.
type Star struct {
	Portrayal
	Scale  float64
	Spikes int
	Inset  float64
}

// CustomImage draws the named image resource over the cell, scaled by Scale.
// Scale 1 covers the cell; a zero Scale paints nothing. DecodeShape sets
// Scale to 1 when the descriptor carries none.
type CustomImage struct {
	Portrayal
	Name  string
	Scale float64
}

func (s Rect) portrayal() Portrayal        { return s.Portrayal }
func (s Circle) portrayal() Portrayal      { return s.Portrayal }
func (s ArrowHead) portrayal() Portrayal   { return s.Portrayal }
func (s Star) portrayal() Portrayal        { return s.Portrayal }
func (s CustomImage) portrayal() Portrayal { return s.Portrayal }

// Kind returns the wire name of a shape's kind. For images it is the resource name.
func Kind(s Shape) string {
	switch s := s.(type) {
	case Rect:
		return KindRect
	case Circle:
		return KindCircle
	case ArrowHead:
		return KindArrowHead
	case Star:
		return KindStar
	case CustomImage:
		return s.Name
	default:
		return ""
	}
}
