package touch

import (
	"sync"
)

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)

// Mock is a scripted touch controller. Each Refresh latches the next queued
// report; once the queue is empty it reports "not pressed". It is safe to
// Push from another goroutine (the simulator feeds it from mouse events).
//
// A latest-wins mock keeps only the most recent unread report, the way a
// CST816 overwrites its registers, so input made while nobody polls is not
// replayed later.
type Mock struct {
	mu         sync.Mutex
	present    bool
	latestWins bool
	queue      []Report
	current    Report

	refreshes int
}

// NewMock creates a mock controller with the given reports queued.
func NewMock(present bool, reports ...Report) *Mock {
	return &Mock{
		present: present,
		queue:   append([]Report(nil), reports...),
	}
}

// NewLatestMock creates a latest-wins mock controller.
func NewLatestMock(present bool) *Mock {
	return &Mock{
		present:    present,
		latestWins: true,
	}
}

// Push queues reports behind the ones already pending. A latest-wins mock
// replaces whatever is pending with the last report.
func (m *Mock) Push(reports ...Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latestWins && len(reports) > 0 {
		m.queue = append(m.queue[:0], reports[len(reports)-1])
		return
	}
	m.queue = append(m.queue, reports...)
}

// Pending returns the number of reports not yet latched.
func (m *Mock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Refreshes returns how many times the mock was polled.
func (m *Mock) Refreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshes
}

// Refresh latches the next queued report.
func (m *Mock) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.refreshes++
	if len(m.queue) == 0 {
		m.current = Report{}
		return
	}
	m.current = m.queue[0]
	m.queue = m.queue[1:]
}

// DetectPresence returns the configured presence.
func (m *Mock) DetectPresence() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.present
}

// Point returns the latched point.
func (m *Mock) Point() (Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Point, m.current.HasPoint
}

// Gesture returns the latched gesture code.
func (m *Mock) Gesture() Gesture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Gesture
}

// Pressed returns the latched press flag.
func (m *Mock) Pressed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Pressed
}

// Tap builds a select report at (x, y).
func Tap(x, y int) Report {
	return Report{Point: Point{X: x, Y: y}, HasPoint: true, Gesture: GestureNone, Pressed: true}
}

// SwipeUp builds a roll report released at (x, y).
func SwipeUp(x, y int) Report {
	return Report{Point: Point{X: x, Y: y}, HasPoint: true, Gesture: GestureSwipeUp, Pressed: true}
}
