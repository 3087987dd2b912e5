// Package touch normalizes raw touch controller reports into per-tick samples.
package touch

// Point is a touch coordinate in screen pixels.
type Point struct {
	X, Y int
}

// Gesture is the controller-reported gesture code (CST816 register 0x01).
type Gesture uint8

const (
	GestureNone        Gesture = 0x00
	GestureSwipeUp     Gesture = 0x01
	GestureSwipeDown   Gesture = 0x02
	GestureSwipeLeft   Gesture = 0x03
	GestureSwipeRight  Gesture = 0x04
	GestureSingleClick Gesture = 0x05
	GestureDoubleClick Gesture = 0x0B
	GestureLongPress   Gesture = 0x0C
)

// Intent is what a gesture asks the application to do.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentSelect
	IntentRoll
)

func (i Intent) String() string {
	switch i {
	case IntentSelect:
		return "select"
	case IntentRoll:
		return "roll"
	default:
		return "unknown"
	}
}

// Normalize maps a gesture code to one of the two recognized intents.
func Normalize(g Gesture) Intent {
	switch g {
	case GestureNone:
		return IntentSelect
	case GestureSwipeUp:
		return IntentRoll
	default:
		return IntentUnknown
	}
}

// Device is a touch controller (real or mocked).
type Device interface {
	DetectPresence() bool
	Point() (Point, bool)
	Gesture() Gesture
	Pressed() bool
}

// Refresher is implemented by devices that latch a report once per tick.
// The sampler calls Refresh before reading Point, Gesture and Pressed.
type Refresher interface {
	Refresh()
}

// Report is one raw reading of a touch controller.
type Report struct {
	Point    Point
	HasPoint bool
	Gesture  Gesture
	Pressed  bool
}

// Sample is a normalized report for a single tick.
type Sample struct {
	Report
	Intent Intent
	Repeat bool // Suppressed as a repeat of an already handled press
}

// Actionable reports whether the sample should be dispatched at all.
func (s Sample) Actionable() bool {
	return s.Pressed && s.HasPoint && s.Intent != IntentUnknown
}
