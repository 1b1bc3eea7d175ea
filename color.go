package gridview

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/srwiley/oksvg"
)

// ParseColor parses a CSS color string into a gg color.
//
// Supported forms:
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - functional: "rgb(r, g, b)" and "rgba(r, g, b, a)" with integer 0-255 or
//     percentage channels and a 0-1 alpha, and "hsl(h, s%, l%)"
//   - the SVG 1.1 named colors, case-insensitive, and "transparent"
//
// Any other string returns an error wrapping ErrInvalidColor.
func ParseColor(s string) (gg.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return gg.Black, fmt.Errorf("%w: empty", ErrInvalidColor)
	case v == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(v, "#"):
		if !isHex(v[1:]) {
			return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return gg.Hex(v), nil
	case strings.HasPrefix(v, "rgba("):
		return parseRGBA(v, s)
	case strings.HasPrefix(v, "rgb("):
		args, ok := strings.CutSuffix(v[len("rgb("):], ")")
		if !ok {
			return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v = "rgb(" + clampChannels(args) + ")"
	case strings.HasPrefix(v, "url("):
		return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := parseSVGColor(v)
	if err != nil || c == nil {
		return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return gg.FromColor(c), nil
}

// parseSVGColor delegates to oksvg. Its parser indexes into empty arguments,
// so a panic is reported as an error.
func parseSVGColor(v string) (c color.Color, err error) {
	defer func() {
		if p := recover(); p != nil {
			c, err = nil, fmt.Errorf("%v", p)
		}
	}()
	if i := strings.IndexByte(v, '('); i >= 0 {
		v = v[:i+1] + strings.Join(strings.Fields(v[i+1:]), "")
	}
	return oksvg.ParseSVGColor(v)
}

func isHex(h string) bool {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// clampChannels rewrites negative channels in an rgb() argument list to 0.
func clampChannels(args string) string {
	parts := strings.Split(args, ",")
	for i, p := range parts {
		if strings.HasPrefix(strings.TrimSpace(p), "-") {
			parts[i] = "0"
		}
	}
	return strings.Join(parts, ",")
}

// parseRGBA splits the alpha off an rgba(...) color and parses the
// channels as rgb(...). v is the lowercased input, orig is kept for errors.
func parseRGBA(v, orig string) (gg.RGBA, error) {
	args, ok := strings.CutSuffix(v[len("rgba("):], ")")
	comma := strings.LastIndexByte(args, ',')
	if !ok || comma < 0 {
		return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	alpha, err := parseAlpha(strings.TrimSpace(args[comma+1:]))
	if err != nil {
		return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	c, err := ParseColor("rgb(" + args[:comma] + ")")
	if err != nil {
		return gg.Black, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	c.A = alpha
	return c, nil
}

func parseAlpha(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		return clamp01(f / 100), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(f), nil
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
