package gridview

import "errors"

// Sentinel errors returned by gridview.
var (
	// ErrInvalidFrame is returned when frame data is not a JSON object of
	// descriptor arrays.
	ErrInvalidFrame = errors.New("gridview: invalid frame")

	// ErrInvalidLayerKey is returned when a frame key is not a decimal layer index.
	ErrInvalidLayerKey = errors.New("gridview: invalid layer key")

	// ErrInvalidShape is returned by DecodeShape for a descriptor that is not
	// a JSON object or lacks a grid position.
	ErrInvalidShape = errors.New("gridview: invalid shape descriptor")

	// ErrInvalidColor is returned by ParseColor for an unrecognized color string.
	ErrInvalidColor = errors.New("gridview: invalid color")

	// ErrNoResourceRoot is reported when an image is requested but the
	// renderer was configured without a resource file system.
	ErrNoResourceRoot = errors.New("gridview: no resource root")
)
