// Package resource resolves and decodes image resources named by image
// descriptors.
package resource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Errors returned by Load.
var (
	// ErrInvalidName is returned for names that are empty, absolute, or
	// escape the resource root.
	ErrInvalidName = errors.New("resource: invalid name")

	// ErrUnsupportedImage is returned when the data matches no known format.
	ErrUnsupportedImage = errors.New("resource: unsupported image format")

	// ErrImageDecode is returned when the data is recognized but corrupt.
	ErrImageDecode = errors.New("resource: image decode failed")
)

// Raster size of an SVG with no usable view box, and the cap on any SVG.
const (
	defaultSVGSize = 64
	maxSVGSize     = 4096
)

// Clean normalizes a resource name to a path valid for fs.FS. Leading
// slashes are stripped; names that escape the root are rejected.
func Clean(name string) (string, error) {
	n := strings.TrimLeft(strings.ReplaceAll(name, "\\", "/"), "/")
	if n == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	n = path.Clean(n)
	if !fs.ValidPath(n) || n == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return n, nil
}

// Load reads and decodes the named image from fsys. Raster formats are
// detected from their content; files ending in .svg are rasterized at their
// view box size.
func Load(fsys fs.FS, name string) (image.Image, error) {
	n, err := Clean(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, n)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(path.Ext(n), ".svg") {
		return rasterizeSVG(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	switch {
	case errors.Is(err, image.ErrFormat):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, n)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, n, err)
	}
	return img, nil
}

// rasterizeSVG draws an SVG icon into an RGBA image sized by its view box.
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: svg: %w", ErrImageDecode, err)
	}
	w, h := svgSize(icon.ViewBox.W), svgSize(icon.ViewBox.H)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1)
	return img, nil
}

func svgSize(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return defaultSVGSize
	}
	return int(math.Min(math.Ceil(v), maxSVGSize))
}
