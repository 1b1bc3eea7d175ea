package gridview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gogpu/gg"

	"github.com/gogpu/gridview/recording"
)

var _ Surface = (*recording.Recorder)(nil)

// newRecorded returns a renderer drawing onto a fresh recorder, with the
// setup commands from NewRenderer already discarded.
func newRecorded(t *testing.T, w, h, gw, gh int, opts ...Option) (*Renderer, *recording.Recorder) {
	t.Helper()
	rec := recording.NewRecorder(w, h)
	opts = append([]Option{WithResourceRoot(fstest.MapFS{})}, opts...)
	r := NewRenderer(rec, w, h, gw, gh, opts...)
	rec.Reset()
	return r, rec
}

// captureLogs routes gridview logging into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func commandsOf[T recording.Command](rec *recording.Recorder) []T {
	var out []T
	for _, c := range rec.Commands() {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func commandTypes(rec *recording.Recorder) []recording.CommandType {
	var out []recording.CommandType
	for _, c := range rec.Commands() {
		out = append(out, c.Type())
	}
	return out
}

func TestNewRendererConfiguresSurface(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	r := NewRenderer(rec, 100, 100, 4, 4)

	if g := r.Geometry(); g.CellWidth != 25 || g.CellHeight != 25 {
		t.Errorf("Geometry() cell = %dx%d, want 25x25", g.CellWidth, g.CellHeight)
	}
	widths := commandsOf[recording.SetLineWidthCommand](rec)
	if len(widths) != 1 || widths[0].Width != 1 {
		t.Errorf("line width commands = %+v, want one of width 1", widths)
	}
	fonts := commandsOf[recording.SetFontCommand](rec)
	if len(fonts) != 1 || fonts[0].Face == nil {
		t.Errorf("font commands = %+v, want one default face", fonts)
	}
}

func TestDrawRectFilled(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 2, 2)
	r.DrawLayer([]Shape{
		Rect{Portrayal: Portrayal{X: 0, Y: 0, Color: "#00aa00", Filled: true}, W: 1, H: 1},
	})

	fills := commandsOf[recording.FillPathCommand](rec)
	if len(fills) != 1 {
		t.Fatalf("fills = %d, want 1", len(fills))
	}
	// Grid row 0 is the bottom row of the surface.
	want := recording.Element{Verb: recording.VerbRect, X: 0, Y: 50, W: 50, H: 50}
	if len(fills[0].Path) != 1 || fills[0].Path[0] != want {
		t.Errorf("fill path = %+v, want [%+v]", fills[0].Path, want)
	}
	if !colorNear(fills[0].Color, gg.Hex("#00aa00")) {
		t.Errorf("fill color = %+v, want #00aa00", fills[0].Color)
	}
	if rec.Count(recording.CmdStrokePath) != 0 {
		t.Error("filled rectangle should not be stroked")
	}
}

func TestDrawRectOutline(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 2, 2)
	r.DrawLayer([]Shape{
		Rect{Portrayal: Portrayal{X: 1, Y: 1, Color: "blue"}, W: 0.5, H: 0.5},
	})

	strokes := commandsOf[recording.StrokePathCommand](rec)
	if len(strokes) != 1 || rec.Count(recording.CmdFillPath) != 0 {
		t.Fatalf("commands = %v, want a single stroke", commandTypes(rec))
	}
	want := recording.Element{Verb: recording.VerbRect, X: 62.5, Y: 12.5, W: 25, H: 25}
	if strokes[0].Path[0] != want {
		t.Errorf("stroke path = %+v, want %+v", strokes[0].Path[0], want)
	}
}

func TestDrawCircleStrokeThenFill(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 1, 1)
	r.DrawLayer([]Shape{
		Circle{Portrayal: Portrayal{Color: "#AAAAAA", Filled: true, Text: "A", TextColor: "white"}, R: 0.5},
	})

	got := commandTypes(rec)
	want := []recording.CommandType{recording.CmdStrokePath, recording.CmdFillPath, recording.CmdDrawText}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	stroke := rec.Commands()[0].(recording.StrokePathCommand)
	c := stroke.Path[0]
	if c.Verb != recording.VerbCircle || c.X != 50 || c.Y != 50 || c.R != 24.5 {
		t.Errorf("circle = %+v, want center (50,50) radius 24.5", c)
	}
	txt := rec.Commands()[2].(recording.DrawTextCommand)
	if txt.Text != "A" || txt.X != 50 || txt.Y != 50 || txt.AX != 0.5 || txt.AY != 0.5 {
		t.Errorf("text = %+v, want centered A", txt)
	}
	if !colorNear(txt.Color, gg.White) {
		t.Errorf("text color = %+v, want white", txt.Color)
	}
}

func TestDrawCircleUnfilled(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 1, 1)
	r.DrawLayer([]Shape{Circle{Portrayal: Portrayal{Color: "red"}, R: 1}})

	got := commandTypes(rec)
	if !reflect.DeepEqual(got, []recording.CommandType{recording.CmdStrokePath}) {
		t.Fatalf("commands = %v, want a single stroke", got)
	}
	// Radius 1 is the largest inscribed radius, 100/2 - 1.
	c := rec.Commands()[0].(recording.StrokePathCommand).Path[0]
	if c.Verb != recording.VerbCircle || c.X != 50 || c.Y != 50 || c.R != r.Geometry().MaxRadius || c.R != 49 {
		t.Errorf("circle = %+v, want center (50,50) radius 49", c)
	}
}

func TestTextColor(t *testing.T) {
	tests := []struct {
		name      string
		textColor string
		want      gg.RGBA
	}{
		{"explicit", "white", gg.White},
		{"falls back to shape color", "", gg.RGBA{R: 1, A: 1}},
		{"invalid is black", "bogus", gg.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newRecorded(t, 100, 100, 1, 1)
			r.DrawLayer([]Shape{
				Rect{Portrayal: Portrayal{Color: "red", Filled: true, Text: "x", TextColor: tt.textColor}, W: 1, H: 1},
			})
			texts := commandsOf[recording.DrawTextCommand](rec)
			if len(texts) != 1 {
				t.Fatalf("text commands = %d, want 1", len(texts))
			}
			if !colorNear(texts[0].Color, tt.want) {
				t.Errorf("text color = %+v, want %+v", texts[0].Color, tt.want)
			}
		})
	}
}

func TestEmptyTextDrawsNothing(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 1, 1)
	r.DrawLayer([]Shape{Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}})
	if rec.Count(recording.CmdDrawText) != 0 {
		t.Error("empty text should not be drawn")
	}
}

func TestMalformedDescriptorsPaintNothing(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 2, 2)
	r.DrawLayer([]Shape{
		Circle{Portrayal: Portrayal{Color: "red", Filled: true}, R: math.NaN()},
		Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: math.NaN(), H: 1},
		Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: -1, H: 1},
		ArrowHead{Portrayal: Portrayal{Color: "red"}, HeadingX: math.NaN(), HeadingY: 1, Scale: 1},
		Rect{Portrayal: Portrayal{X: 1, Y: 1, Color: "green", Filled: true}, W: 1, H: 1},
	})

	got := commandTypes(rec)
	if !reflect.DeepEqual(got, []recording.CommandType{recording.CmdFillPath}) {
		t.Fatalf("commands = %v, want only the valid rectangle's fill", got)
	}
}

// panicSurface panics whenever a circle is added to the path.
type panicSurface struct {
	*recording.Recorder
}

func (panicSurface) DrawCircle(x, y, r float64) {
	panic("circle rasterizer exploded")
}

func TestDescriptorPanicIsolated(t *testing.T) {
	logs := captureLogs(t)
	rec := recording.NewRecorder(100, 100)
	r := NewRenderer(panicSurface{rec}, 100, 100, 1, 1, WithResourceRoot(fstest.MapFS{}))
	rec.Reset()

	r.DrawLayer([]Shape{
		Circle{Portrayal: Portrayal{Color: "red", Filled: true}, R: 1},
		Rect{Portrayal: Portrayal{Color: "blue", Filled: true}, W: 1, H: 1},
	})

	if rec.Count(recording.CmdFillPath) != 1 {
		t.Errorf("fills = %d, want 1 from the rectangle", rec.Count(recording.CmdFillPath))
	}
	if !strings.Contains(logs.String(), "descriptor panicked") {
		t.Errorf("expected a warning for the panic, got: %s", logs.String())
	}
}

// failSurface returns an error from every fill.
type failSurface struct {
	*recording.Recorder
}

func (failSurface) Fill() error { return errors.New("fill failed") }

func TestSurfaceErrorDoesNotStopLayer(t *testing.T) {
	logs := captureLogs(t)
	rec := recording.NewRecorder(100, 100)
	r := NewRenderer(failSurface{rec}, 100, 100, 2, 2, WithResourceRoot(fstest.MapFS{}))
	rec.Reset()

	r.DrawLayer([]Shape{
		Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1},
		Rect{Portrayal: Portrayal{X: 1, Color: "red"}, W: 1, H: 1},
	})

	if rec.Count(recording.CmdStrokePath) != 1 {
		t.Errorf("strokes = %d, want 1 from the second rectangle", rec.Count(recording.CmdStrokePath))
	}
	if !strings.Contains(logs.String(), "fill failed") {
		t.Errorf("expected the surface error to be logged, got: %s", logs.String())
	}
}

func TestDrawLayerDoesNotMutateDescriptors(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 4, 4)
	shapes := []Shape{
		Rect{Portrayal: Portrayal{X: 1, Y: 0, Color: "red", Filled: true}, W: 1, H: 1},
		Circle{Portrayal: Portrayal{X: 2, Y: 3, Color: "blue"}, R: 0.5},
	}
	orig := append([]Shape(nil), shapes...)

	r.DrawLayer(shapes)
	first := append([]recording.Command(nil), rec.Commands()...)
	rec.Reset()
	r.DrawLayer(shapes)

	if !reflect.DeepEqual(shapes, orig) {
		t.Errorf("descriptors changed: %+v, want %+v", shapes, orig)
	}
	if !reflect.DeepEqual(rec.Commands(), first) {
		t.Errorf("second draw = %v, first draw = %v", rec.Commands(), first)
	}
}

func TestDegenerateGridDrawsNothing(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, -1}, {1000, 1000}} {
		r, rec := newRecorded(t, 100, 100, dims[0], dims[1], WithGridLines(true))
		r.DrawLayer([]Shape{Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}})
		r.DrawGridLines()
		if n := len(rec.Commands()); n != 0 {
			t.Errorf("grid %v: %d commands, want 0", dims, n)
		}
	}
}

func TestNilDescriptorIgnored(t *testing.T) {
	logs := captureLogs(t)
	r, rec := newRecorded(t, 100, 100, 1, 1)

	r.drawShape(nil)
	r.DrawLayer([]Shape{Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}})
	if rec.Count(recording.CmdFillPath) != 1 {
		t.Errorf("fills = %d, want 1", rec.Count(recording.CmdFillPath))
	}
	if strings.Contains(logs.String(), "panicked") {
		t.Errorf("nil descriptor should be ignored quietly, got: %s", logs.String())
	}
}

func TestResetCanvasIdempotent(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 1, 1)
	rec.MoveTo(0, 0)
	rec.LineTo(10, 10)

	r.ResetCanvas()
	r.ResetCanvas()
	_ = rec.Stroke()

	got := commandTypes(rec)
	want := []recording.CommandType{recording.CmdClear, recording.CmdClear}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("commands = %v, want %v and no stroke of the discarded path", got, want)
	}
}

func TestResetCanvasClearsPixels(t *testing.T) {
	dc := gg.NewContext(40, 40)
	r := NewRenderer(dc, 40, 40, 1, 1, WithResourceRoot(fstest.MapFS{}))
	r.DrawLayer([]Shape{Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}})

	if _, _, _, a := dc.Image().At(20, 20).RGBA(); a == 0 {
		t.Fatal("rectangle was not painted")
	}
	r.ResetCanvas()
	r.ResetCanvas()
	if _, _, _, a := dc.Image().At(20, 20).RGBA(); a != 0 {
		t.Errorf("alpha after reset = %d, want 0", a)
	}
}

func TestDrawFrameLayerOrder(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 1, 1)
	frame := Frame{
		1: {Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}},
		0: {Rect{Portrayal: Portrayal{Color: "blue", Filled: true}, W: 1, H: 1}},
	}
	r.DrawFrame(frame)

	if got := rec.Commands()[0].Type(); got != recording.CmdClear {
		t.Errorf("first command = %v, want Clear", got)
	}
	fills := commandsOf[recording.FillPathCommand](rec)
	if len(fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(fills))
	}
	if !colorNear(fills[0].Color, gg.RGBA{B: 1, A: 1}) || !colorNear(fills[1].Color, gg.RGBA{R: 1, A: 1}) {
		t.Errorf("fill order = %+v, %+v, want blue then red", fills[0].Color, fills[1].Color)
	}
}

func TestHideShowLayer(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 1, 1)
	frame := Frame{
		0: {Rect{Portrayal: Portrayal{Color: "blue", Filled: true}, W: 1, H: 1}},
		1: {Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}},
	}

	r.HideLayer(1)
	if !r.LayerHidden(1) || r.LayerHidden(0) {
		t.Fatal("LayerHidden does not reflect HideLayer")
	}
	r.DrawFrame(frame)
	if n := rec.Count(recording.CmdFillPath); n != 1 {
		t.Errorf("fills with layer 1 hidden = %d, want 1", n)
	}

	rec.Reset()
	r.ShowLayer(1)
	r.DrawFrame(frame)
	if n := rec.Count(recording.CmdFillPath); n != 2 {
		t.Errorf("fills after ShowLayer = %d, want 2", n)
	}
}

func TestDrawFrameGridLines(t *testing.T) {
	r, rec := newRecorded(t, 100, 100, 2, 2, WithGridLines(true))
	r.DrawFrame(Frame{0: {Rect{Portrayal: Portrayal{Color: "red", Filled: true}, W: 1, H: 1}}})

	got := commandTypes(rec)
	want := []recording.CommandType{recording.CmdClear, recording.CmdStrokePath, recording.CmdFillPath}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
}

func TestDrawFramePixels(t *testing.T) {
	f, err := DecodeFrame([]byte(sampleFrame))
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	dc := gg.NewContext(100, 100)
	r := NewRenderer(dc, 100, 100, 2, 2, WithResourceRoot(fstest.MapFS{}))
	r.DrawFrame(f)

	img := dc.Image()

	// The top-left cell (grid 0,1) only holds its green rectangle.
	red, green, blue, a := img.At(10, 10).RGBA()
	if red > 0x0800 || blue > 0x0800 || a < 0xF000 || green < 0xA000 || green > 0xB000 {
		t.Errorf("top-left pixel = (%d, %d, %d, %d), want #00aa00", red, green, blue, a)
	}

	// Grid (0,0) holds a gray circle of radius 12 centered on (25, 75).
	red, _, _, _ = img.At(33, 75).RGBA()
	if red < 0xA000 {
		t.Errorf("circle pixel red = %d, want gray #AAAAAA", red)
	}
}

// greenLayer fills every cell of a 2x2 grid with #00aa00.
var greenLayer = []Shape{
	Rect{Portrayal: Portrayal{X: 0, Y: 0, Color: "#00aa00", Filled: true}, W: 1, H: 1},
	Rect{Portrayal: Portrayal{X: 0, Y: 1, Color: "#00aa00", Filled: true}, W: 1, H: 1},
	Rect{Portrayal: Portrayal{X: 1, Y: 0, Color: "#00aa00", Filled: true}, W: 1, H: 1},
	Rect{Portrayal: Portrayal{X: 1, Y: 1, Color: "#00aa00", Filled: true}, W: 1, H: 1},
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestFullCellRectsLeaveNoSeams(t *testing.T) {
	want := color.NRGBA{R: 0, G: 0xaa, B: 0, A: 0xff}
	for _, size := range [][2]int{{100, 100}, {101, 99}} {
		w, h := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			dc := gg.NewContext(w, h)
			r := NewRenderer(dc, w, h, 2, 2, WithResourceRoot(fstest.MapFS{}))
			r.DrawFrame(Frame{0: greenLayer})

			img := dc.Image()
			g := r.Geometry()
			bad := 0
			for y := 0; y < 2*g.CellHeight; y++ {
				for x := 0; x < 2*g.CellWidth; x++ {
					if got := nrgbaAt(img, x, y); got != want {
						if bad < 5 {
							t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
						}
						bad++
					}
				}
			}
			if bad > 0 {
				t.Errorf("%d pixels differ from #00aa00", bad)
			}
		})
	}
}

func TestUnitCircleStaysInCell(t *testing.T) {
	tests := []struct {
		w, h   int
		gx, gy int
	}{
		{100, 100, 0, 1},
		{100, 100, 1, 0},
		{101, 99, 0, 1},
		{101, 99, 1, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d/cell(%d,%d)", tt.w, tt.h, tt.gx, tt.gy), func(t *testing.T) {
			dc := gg.NewContext(tt.w, tt.h)
			r := NewRenderer(dc, tt.w, tt.h, 2, 2, WithResourceRoot(fstest.MapFS{}))
			r.DrawLayer([]Shape{
				Circle{Portrayal: Portrayal{X: tt.gx, Y: tt.gy, Color: "red", Filled: true}, R: 1},
			})

			g := r.Geometry()
			row := g.FlipY(tt.gy)
			left, top := tt.gx*g.CellWidth, row*g.CellHeight
			right, bottom := left+g.CellWidth, top+g.CellHeight

			img := dc.Image()
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					inside := x >= left-1 && x < right+1 && y >= top-1 && y < bottom+1
					if inside {
						continue
					}
					if a := nrgbaAt(img, x, y).A; a != 0 {
						t.Fatalf("pixel (%d, %d) alpha = %d outside cell [%d,%d)x[%d,%d) + 1px",
							x, y, a, left, right, top, bottom)
					}
				}
			}

			// The fill reaches most of the way to MaxRadius along the row.
			cx, cy := g.CellCenter(tt.gx, row)
			edge := int(cx + g.MaxRadius - 2)
			if got := nrgbaAt(img, edge, int(cy)); got.R < 0xf0 || got.A != 0xff {
				t.Errorf("pixel (%d, %d) = %v, want opaque red near the rim", edge, int(cy), got)
			}
		})
	}
}
