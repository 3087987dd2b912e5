// Package display defines the drawing surface the application renders to and
// its backends: a Canvas over any TinyGo displayer, an image-backed round
// Framebuffer for the desktop, and a Recorder for tests.
package display

import "image/color"

// Width and Height of the round panel in pixels.
const (
	Width  = 240
	Height = 240
)

// Font selects a glyph set.
type Font int

const (
	FontSmall Font = iota // 8px labels
	FontLarge             // Numbers and caption

	fontCount
)

func (f Font) String() string {
	switch f {
	case FontSmall:
		return "small"
	case FontLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Display is the drawing surface. Calls do not report errors; backends that
// can fail log and carry on.
type Display interface {
	// DrawText renders text with its top-left corner at (x, y), filling the
	// text box with bg first.
	DrawText(font Font, text string, x, y int16, fg, bg color.RGBA)
	// DrawImage renders a static image asset by name.
	DrawImage(asset string, x, y int16)
	// DrawBitmap renders a large glyph by name.
	DrawBitmap(glyph string, x, y int16)
	// FillRegion paints a rectangle.
	FillRegion(x, y, w, h int16, c color.RGBA)
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) color.RGBA {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
