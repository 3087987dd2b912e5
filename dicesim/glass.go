package main

import (
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/godice/pkg/display"
	"github.com/itohio/godice/pkg/touch"
)

const (
	// frameInterval throttles image refreshes to ~60 FPS.
	frameInterval = 16 * time.Millisecond
	// swipeThreshold is the minimum travel in panel pixels for a swipe.
	swipeThreshold = 20
)

// glassWidget shows the round framebuffer and turns mouse input into touch
// reports: a click is a tap, a drag is a swipe released where it ends.
type glassWidget struct {
	widget.BaseWidget

	fb    *display.Framebuffer
	image *canvas.Image
	sink  func(...touch.Report)

	dirty atomic.Bool

	mu       sync.Mutex
	dragging bool
	dragFrom fyne.Position
	dragTo   fyne.Position
}

var (
	_ fyne.Tappable  = (*glassWidget)(nil)
	_ fyne.Draggable = (*glassWidget)(nil)
)

func newGlassWidget(fb *display.Framebuffer, scale float32, sink func(...touch.Report)) *glassWidget {
	g := &glassWidget{
		fb:   fb,
		sink: sink,
	}
	g.image = canvas.NewImageFromImage(fb.Snapshot())
	g.image.FillMode = canvas.ImageFillContain
	g.image.ScaleMode = canvas.ImageScalePixels
	g.image.SetMinSize(fyne.NewSize(display.Width*scale, display.Height*scale))

	fb.OnFlush(func() { g.dirty.Store(true) })

	g.ExtendBaseWidget(g)
	return g
}

// CreateRenderer implements fyne.Widget.
func (g *glassWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.image)
}

// run pushes framebuffer changes to the window until done is closed.
func (g *glassWidget) run(done <-chan struct{}) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !g.dirty.Swap(false) {
				continue
			}
			snap := g.fb.Snapshot()
			fyne.Do(func() {
				g.image.Image = snap
				g.image.Refresh()
			})
		}
	}
}

// Tapped implements fyne.Tappable.
func (g *glassWidget) Tapped(ev *fyne.PointEvent) {
	x, y := g.toPanel(ev.Position)
	g.sink(touch.Tap(x, y))
}

// Dragged implements fyne.Draggable.
func (g *glassWidget) Dragged(ev *fyne.DragEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.dragging {
		g.dragging = true
		g.dragFrom = ev.Position.Subtract(ev.Dragged)
	}
	g.dragTo = ev.Position
}

// DragEnd implements fyne.Draggable.
func (g *glassWidget) DragEnd() {
	g.mu.Lock()
	from, to := g.dragFrom, g.dragTo
	g.dragging = false
	g.mu.Unlock()

	x0, y0 := g.toPanel(from)
	x, y := g.toPanel(to)
	g.sink(touch.Report{
		Point:    touch.Point{X: x, Y: y},
		HasPoint: true,
		Gesture:  swipeGesture(x-x0, y-y0),
		Pressed:  true,
	})
}

// toPanel converts widget coordinates into panel pixels.
func (g *glassWidget) toPanel(p fyne.Position) (int, int) {
	size := g.Size()
	side := min(size.Width, size.Height)
	if side <= 0 {
		return 0, 0
	}
	// The image is centered when the widget is not square.
	ox := (size.Width - side) / 2
	oy := (size.Height - side) / 2
	x := int((p.X - ox) * display.Width / side)
	y := int((p.Y - oy) * display.Height / side)
	return x, y
}

// swipeGesture classifies a drag the way the CST816 does.
func swipeGesture(dx, dy int) touch.Gesture {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx < swipeThreshold && ady < swipeThreshold:
		return touch.GestureSingleClick
	case ady >= adx && dy < 0:
		return touch.GestureSwipeUp
	case ady >= adx:
		return touch.GestureSwipeDown
	case dx < 0:
		return touch.GestureSwipeLeft
	default:
		return touch.GestureSwipeRight
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
