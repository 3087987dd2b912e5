// Package assets renders the dice artwork: a small icon per die for the
// selection ring and a large outlined glyph for the die currently selected.
// Shapes are procedural so the firmware needs neither an image decoder nor
// memory for bitmaps.
package assets

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/itohio/godice/pkg/dice"
)

const (
	// IconSize is the edge of a selection icon.
	IconSize = 28
	// EmblemSize is the edge of the d20 emblem at the top of the ring.
	EmblemSize = 38
	// GlyphSize is the edge of a large glyph.
	GlyphSize = 124
)

type shape struct {
	sides    int
	rotation float32 // Radians
	color    color.RGBA
}

var shapes = [dice.Count]shape{
	dice.D4:  {sides: 3, rotation: -math32.Pi / 2, color: color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 255}},
	dice.D6:  {sides: 4, rotation: math32.Pi / 4, color: color.RGBA{R: 0xfb, G: 0x8c, B: 0x00, A: 255}},
	dice.D8:  {sides: 4, rotation: -math32.Pi / 2, color: color.RGBA{R: 0xfd, G: 0xd8, B: 0x35, A: 255}},
	dice.D20: {sides: 6, rotation: -math32.Pi / 2, color: color.RGBA{R: 0x43, G: 0xa0, B: 0x47, A: 255}},
	dice.D10: {sides: 5, rotation: math32.Pi / 2, color: color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 255}},
	dice.D12: {sides: 5, rotation: -math32.Pi / 2, color: color.RGBA{R: 0x8e, G: 0x24, B: 0xaa, A: 255}},
	dice.D2:  {sides: 32, rotation: 0, color: color.RGBA{R: 0xb0, G: 0xbe, B: 0xc5, A: 255}},
}

// Images returns every icon and glyph keyed by the names used in dice.Spec.
func Images() map[string]image.Image {
	out := make(map[string]image.Image, 2*dice.Count)
	for _, k := range dice.Kinds() {
		spec := k.Spec()
		s := shapes[k]
		size := IconSize
		if k == dice.D20 {
			size = EmblemSize
		}
		out[spec.Icon] = Polygon(size, s.sides, s.rotation, s.color, 0)
		out[spec.Glyph] = Polygon(GlyphSize, s.sides, s.rotation, s.color, 4)
	}
	return out
}

// Vertices returns the corners of a regular polygon inscribed in a circle of
// radius r centered on (cx, cy).
func Vertices(cx, cy, r float32, sides int, rotation float32) [][2]float32 {
	pts := make([][2]float32, sides)
	step := 2 * math32.Pi / float32(sides)
	for i := range pts {
		s, c := math32.Sincos(rotation + float32(i)*step)
		pts[i] = [2]float32{cx + r*c, cy + r*s}
	}
	return pts
}

// Shape is a regular polygon on a transparent square canvas. Pixels are
// computed on demand, so a shape costs a few vertices rather than a bitmap.
type Shape struct {
	size  int
	col   color.RGBA
	outer [][2]float32
	inner [][2]float32
}

// Ensure Shape is an image.
var _ image.Image = (*Shape)(nil)

// Polygon describes a regular polygon on a size x size canvas. With a zero
// stroke the shape is filled, otherwise only an outline of that width.
func Polygon(size, sides int, rotation float32, col color.RGBA, stroke float32) *Shape {
	half := float32(size) / 2
	s := &Shape{
		size:  size,
		col:   col,
		outer: Vertices(half, half, half-1, sides, rotation),
	}
	if stroke > 0 {
		// Same polygon shrunk so the edge distance drops by stroke.
		apothem := (half - 1) * math32.Cos(math32.Pi/float32(sides))
		scale := math32.Max(0, (apothem-stroke)/apothem)
		s.inner = Vertices(half, half, (half-1)*scale, sides, rotation)
	}
	return s
}

func (s *Shape) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *Shape) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.size, s.size)
}

func (s *Shape) At(x, y int) color.Color {
	return s.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y), transparent outside the shape.
func (s *Shape) RGBAAt(x, y int) color.RGBA {
	px, py := float32(x)+0.5, float32(y)+0.5
	if !inside(s.outer, px, py) {
		return color.RGBA{}
	}
	if s.inner != nil && inside(s.inner, px, py) {
		return color.RGBA{}
	}
	return s.col
}

// inside is the even-odd point in polygon test.
func inside(poly [][2]float32, x, y float32) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
		j = i
	}
	return in
}
