package gridview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Frame is one simulation step's portrayal: shape descriptors keyed by layer.
// Layers paint in ascending key order; descriptors within a layer paint in
// slice order.
type Frame map[int][]Shape

// Layers returns the frame's layer indices in ascending order.
func (f Frame) Layers() []int {
	keys := make([]int, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DecodeFrame decodes a frame from its JSON wire form: an object whose keys
// are decimal layer indices and whose values are arrays of descriptors.
//
// Malformed descriptors are skipped and logged at debug level; only a
// malformed frame structure is an error.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := f.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return f, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}
	out := make(Frame, len(raw))
	for key, val := range raw {
		layer, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLayerKey, key)
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(val, &elems); err != nil {
			return fmt.Errorf("%w: layer %d: %w", ErrInvalidFrame, layer, err)
		}
		shapes := make([]Shape, 0, len(elems))
		for i, elem := range elems {
			s, err := DecodeShape(elem)
			if err != nil {
				Logger().Debug("gridview: skipping descriptor",
					"layer", layer, "index", i, "err", err)
				continue
			}
			shapes = append(shapes, s)
		}
		// An existing key decoded twice (e.g. "1" and "01") keeps both lists.
		out[layer] = append(out[layer], shapes...)
	}
	*f = out
	return nil
}

// fields is a descriptor decoded into its raw members.
type fields map[string]json.RawMessage

// DecodeShape decodes a single shape descriptor.
//
// Numeric size fields that are missing or not numbers decode as NaN, so the
// drawer paints nothing for them. An image without a scale draws at the cell
// size. Any Shape name other than the built-in kinds names an image resource.
func DecodeShape(data []byte) (Shape, error) {
	var m fields
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidShape)
	}

	x, okX := m.integer("x")
	y, okY := m.integer("y")
	if !okX || !okY {
		return nil, fmt.Errorf("%w: missing grid position", ErrInvalidShape)
	}
	layer, _ := m.integer("Layer")
	p := Portrayal{
		X:         x,
		Y:         y,
		Color:     m.str("Color"),
		Filled:    m.truthy("Filled"),
		Layer:     layer,
		Text:      m.str("text"),
		TextColor: m.str("text_color"),
	}

	switch kind := m.str("Shape"); kind {
	case KindRect:
		return Rect{Portrayal: p, W: m.number("w"), H: m.number("h")}, nil
	case KindCircle:
		return Circle{Portrayal: p, R: m.number("r")}, nil
	case KindArrowHead:
		return ArrowHead{
			Portrayal: p,
			HeadingX:  m.number("heading_x"),
			HeadingY:  m.number("heading_y"),
			Scale:     m.number("scale"),
		}, nil
	case KindStar:
		spikes, _ := m.integer("spikes")
		return Star{
			Portrayal: p,
			Scale:     m.number("scale"),
			Spikes:    spikes,
			Inset:     m.number("inset"),
		}, nil
	default:
		scale := m.number("scale")
		if math.IsNaN(scale) {
			scale = 1
		}
		return CustomImage{Portrayal: p, Name: kind, Scale: scale}, nil
	}
}

// number returns a numeric member, accepting numeric strings. Missing,
// null and non-numeric members are NaN.
func (m fields) number(key string) float64 {
	raw, ok := m[key]
	if !ok {
		return math.NaN()
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return math.NaN()
		}
		raw = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// integer returns a numeric member truncated toward zero. Values outside
// the int32 range are rejected.
func (m fields) integer(key string) (int, bool) {
	f := m.number(key)
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// str returns a string member. Numbers and booleans are formatted the way
// they would print; null and missing members are empty.
func (m fields) str(key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	var v any
	if json.Unmarshal(raw, &v) != nil {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// truthy evaluates a member the way a JavaScript condition would: false,
// null, 0, NaN and "" are false, everything else is true.
func (m fields) truthy(key string) bool {
	raw, ok := m[key]
	if !ok {
		return false
	}
	var v any
	if json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}
