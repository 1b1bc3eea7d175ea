package recording

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdClear        CommandType = iota // Clear the surface to transparent
	CmdSetLineWidth                    // Set stroke line width
	CmdSetFont                         // Set text face

	// Drawing commands
	CmdFillPath   // Fill a path
	CmdStrokePath // Stroke a path
	CmdDrawText   // Draw anchored text
	CmdDrawImage  // Draw a scaled image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:        "Clear",
	CmdSetLineWidth: "SetLineWidth",
	CmdSetFont:      "SetFont",
	CmdFillPath:     "FillPath",
	CmdStrokePath:   "StrokePath",
	CmdDrawText:     "DrawText",
	CmdDrawImage:    "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// ClearCommand resets every pixel to transparent.
type ClearCommand struct{}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// SetLineWidthCommand sets the stroke line width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetFontCommand sets the face used by subsequent text.
type SetFontCommand struct {
	Face text.Face
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillPathCommand fills a path with a solid color.
type FillPathCommand struct {
	Path  Path
	Color gg.RGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path with a solid color.
type StrokePathCommand struct {
	Path      Path
	Color     gg.RGBA
	LineWidth float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawTextCommand draws text so that the anchor (AX, AY) lands on (X, Y).
type DrawTextCommand struct {
	Text   string
	X, Y   float64
	AX, AY float64
	Color  gg.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawImageCommand draws an image into a destination rectangle.
type DrawImageCommand struct {
	Image   *gg.ImageBuf
	Options gg.DrawImageOptions
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
