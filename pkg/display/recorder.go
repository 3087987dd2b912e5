package display

import (
	"image/color"
)

// Ensure Recorder implements Display.
var _ Display = (*Recorder)(nil)

// Op names a recorded Display call.
type Op string

const (
	OpText   Op = "text"
	OpImage  Op = "image"
	OpBitmap Op = "bitmap"
	OpFill   Op = "fill"
)

// Call is one recorded Display call.
type Call struct {
	Op   Op
	Font Font
	Text string // Text, or the asset/glyph name
	X, Y int16
	W, H int16
	FG   color.RGBA
	BG   color.RGBA
}

// Recorder is a Display that only records what it was asked to draw.
type Recorder struct {
	Calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawText(font Font, text string, x, y int16, fg, bg color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpText, Font: font, Text: text, X: x, Y: y, FG: fg, BG: bg})
}

func (r *Recorder) DrawImage(asset string, x, y int16) {
	r.Calls = append(r.Calls, Call{Op: OpImage, Text: asset, X: x, Y: y})
}

func (r *Recorder) DrawBitmap(glyph string, x, y int16) {
	r.Calls = append(r.Calls, Call{Op: OpBitmap, Text: glyph, X: x, Y: y})
}

func (r *Recorder) FillRegion(x, y, w, h int16, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFill, X: x, Y: y, W: w, H: h, FG: c})
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Filter returns the calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// TextsAt returns every text drawn at (x, y), oldest first.
func (r *Recorder) TextsAt(x, y int16) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpText && c.X == x && c.Y == y {
			out = append(out, c)
		}
	}
	return out
}

// LastTextAt returns the most recent text drawn at (x, y).
func (r *Recorder) LastTextAt(x, y int16) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		c := r.Calls[i]
		if c.Op == OpText && c.X == x && c.Y == y {
			return c, true
		}
	}
	return Call{}, false
}
