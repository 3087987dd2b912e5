package display

import (
	"image"
	"image/color"
	"sync"

	"github.com/chewxy/math32"
)

// Framebuffer is an in-memory round panel. Pixels outside the circular glass
// are never written, so a snapshot looks like the real module.
// It satisfies the TinyGo drivers.Displayer interface.
type Framebuffer struct {
	mu      sync.RWMutex
	img     *image.RGBA
	mask    []bool
	onFlush func()
}

// NewFramebuffer creates a w x h round framebuffer filled with bg.
func NewFramebuffer(w, h int, bg color.RGBA) *Framebuffer {
	fb := &Framebuffer{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		mask: roundMask(w, h),
	}
	for i, in := range fb.mask {
		if in {
			fb.img.SetRGBA(i%w, i/w, bg)
		}
	}
	return fb
}

// roundMask marks the pixels whose centers lie on the glass.
func roundMask(w, h int) []bool {
	mask := make([]bool, w*h)
	cx, cy := float32(w)/2, float32(h)/2
	r := math32.Min(cx, cy)
	for y := range h {
		for x := range w {
			d := math32.Hypot(float32(x)+0.5-cx, float32(y)+0.5-cy)
			mask[y*w+x] = d <= r
		}
	}
	return mask
}

// OnFlush registers a callback invoked on every Display call.
func (f *Framebuffer) OnFlush(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onFlush = fn
}

// Size returns the panel size.
func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// Visible reports whether (x, y) is on the glass.
func (f *Framebuffer) Visible(x, y int16) bool {
	b := f.img.Bounds()
	if int(x) < 0 || int(y) < 0 || int(x) >= b.Dx() || int(y) >= b.Dy() {
		return false
	}
	return f.mask[int(y)*b.Dx()+int(x)]
}

// SetPixel writes one pixel; off-glass pixels are dropped.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Visible(x, y) {
		f.img.SetRGBA(int(x), int(y), c)
	}
}

// FillRectangle paints a clipped rectangle.
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			if f.Visible(i, j) {
				f.img.SetRGBA(int(i), int(j), c)
			}
		}
	}
	return nil
}

// Display notifies the flush callback.
func (f *Framebuffer) Display() error {
	f.mu.RLock()
	fn := f.onFlush
	f.mu.RUnlock()
	if fn != nil {
		fn()
	}
	return nil
}

// At returns the pixel at (x, y).
func (f *Framebuffer) At(x, y int) color.RGBA {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.img.RGBAAt(x, y)
}

// Snapshot returns a copy of the current frame.
func (f *Framebuffer) Snapshot() *image.RGBA {
	f.mu.RLock()
	defer f.mu.RUnlock()
	cp := image.NewRGBA(f.img.Bounds())
	copy(cp.Pix, f.img.Pix)
	return cp
}
