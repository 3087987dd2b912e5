package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/itohio/godice/internal/log"
)

// Ensure Canvas implements Display.
var _ Display = (*Canvas)(nil)

// filler is implemented by panels with a hardware rectangle fill.
type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas draws onto any TinyGo displayer using tinyfont glyphs and a
// registry of decoded images.
type Canvas struct {
	target drivers.Displayer
	fonts  [fontCount]*tinyfont.Font
	images map[string]image.Image
	log    *log.Logger
}

// NewCanvas creates a canvas. images maps asset and glyph names to pixels.
func NewCanvas(target drivers.Displayer, images map[string]image.Image, logger *log.Logger) *Canvas {
	if logger == nil {
		logger = log.Discard()
	}
	return &Canvas{
		target: target,
		fonts: [fontCount]*tinyfont.Font{
			FontSmall: &proggy.TinySZ8pt7b,
			FontLarge: &freemono.Bold18pt7b,
		},
		images: images,
		log:    logger,
	}
}

// TextSize returns the box DrawText fills for text.
func (c *Canvas) TextSize(font Font, text string) (w, h int16) {
	f := c.font(font)
	_, outbox := tinyfont.LineWidth(f, text)
	return int16(outbox), int16(f.YAdvance)
}

// DrawText fills the text box with bg and renders text on top of it.
func (c *Canvas) DrawText(font Font, text string, x, y int16, fg, bg color.RGBA) {
	f := c.font(font)
	w, h := c.TextSize(font, text)
	c.fill(x, y, w, h, bg)

	// tinyfont positions on the baseline.
	baseline := y + h*3/4
	tinyfont.WriteLine(c.target, f, x, baseline, text, fg)
	c.flush()
}

// DrawImage blits a registered image. Fully transparent pixels are skipped.
func (c *Canvas) DrawImage(asset string, x, y int16) {
	img, ok := c.images[asset]
	if !ok {
		c.log.Warnf("display: unknown asset %q", asset)
		return
	}
	c.blit(img, x, y)
	c.flush()
}

// DrawBitmap blits a registered large glyph.
func (c *Canvas) DrawBitmap(glyph string, x, y int16) {
	c.DrawImage(glyph, x, y)
}

// FillRegion paints a rectangle.
func (c *Canvas) FillRegion(x, y, w, h int16, col color.RGBA) {
	c.fill(x, y, w, h, col)
	c.flush()
}

func (c *Canvas) font(font Font) *tinyfont.Font {
	if font < 0 || font >= fontCount {
		font = FontSmall
	}
	return c.fonts[font]
}

func (c *Canvas) fill(x, y, w, h int16, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if f, ok := c.target.(filler); ok {
		if err := f.FillRectangle(x, y, w, h, col); err == nil {
			return
		}
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.target.SetPixel(i, j, col)
		}
	}
}

func (c *Canvas) blit(img image.Image, x, y int16) {
	b := img.Bounds()
	for j := b.Min.Y; j < b.Max.Y; j++ {
		for i := b.Min.X; i < b.Max.X; i++ {
			px := color.RGBAModel.Convert(img.At(i, j)).(color.RGBA)
			if px.A == 0 {
				continue
			}
			c.target.SetPixel(x+int16(i-b.Min.X), y+int16(j-b.Min.Y), px)
		}
	}
}

func (c *Canvas) flush() {
	if err := c.target.Display(); err != nil {
		c.log.Errorf("display: flush: %v", err)
	}
}
