package gridview

import (
	"io/fs"
	"os"

	"github.com/gogpu/gg/text"
)

// Defaults applied by NewRenderer.
const (
	// DefaultResourceDir is the directory image descriptors are resolved against.
	DefaultResourceDir = "local"

	// DefaultFontSize is the size, in points, of inscribed text.
	DefaultFontSize = 10.0

	// DefaultGridColor is the stroke color of the grid overlay.
	DefaultGridColor = "#eee"

	// DefaultLoadConcurrency bounds the number of image resources decoded at once.
	DefaultLoadConcurrency = 4
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := gridview.NewRenderer(dc, 500, 500, 20, 20,
//	    gridview.WithResourceDir("assets"),
//	    gridview.WithGridLines(true),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	resources       fs.FS
	face            text.Face
	fontSize        float64
	gridColor       string
	gridLines       bool
	loadConcurrency int64
	cacheCapacity   int
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		resources:       os.DirFS(DefaultResourceDir),
		fontSize:        DefaultFontSize,
		gridColor:       DefaultGridColor,
		loadConcurrency: DefaultLoadConcurrency,
	}
}

// WithResourceRoot sets the file system image descriptors are loaded from.
// A nil root disables image loading; every image descriptor then paints nothing.
func WithResourceRoot(root fs.FS) Option {
	return func(o *rendererOptions) {
		o.resources = root
	}
}

// WithResourceDir loads image descriptors from a directory on disk.
func WithResourceDir(dir string) Option {
	return func(o *rendererOptions) {
		o.resources = os.DirFS(dir)
	}
}

// WithFont sets the face used for inscribed text. It takes precedence
// over WithFontSize.
func WithFont(face text.Face) Option {
	return func(o *rendererOptions) {
		o.face = face
	}
}

// WithFontSize sets the size of the default Go Regular face.
// Non-positive sizes are ignored.
func WithFontSize(points float64) Option {
	return func(o *rendererOptions) {
		if points > 0 {
			o.fontSize = points
		}
	}
}

// WithGridColor sets the CSS color of the grid overlay.
func WithGridColor(css string) Option {
	return func(o *rendererOptions) {
		o.gridColor = css
	}
}

// WithGridLines makes DrawFrame paint the grid overlay before the layers.
func WithGridLines(enabled bool) Option {
	return func(o *rendererOptions) {
		o.gridLines = enabled
	}
}

// WithLoadConcurrency bounds how many image resources are decoded in parallel.
// Values below 1 are ignored.
func WithLoadConcurrency(n int) Option {
	return func(o *rendererOptions) {
		if n >= 1 {
			o.loadConcurrency = int64(n)
		}
	}
}

// WithImageCacheCapacity sets the per-shard capacity of the decoded image cache.
// Zero or negative uses the cache default.
func WithImageCacheCapacity(n int) Option {
	return func(o *rendererOptions) {
		o.cacheCapacity = n
	}
}
