// Package roll animates a die roll: a decelerating cycle of random faces,
// a blinking reveal colored by outcome, and a hold before the next roll.
//
// The animator is a state machine advanced one tick at a time by Step, which
// returns how long to wait before the next tick. Run drives it to completion.
//
//	Idle -> Cycling (50 ticks) -> Settling (7 blinks) -> Revealed (hold) -> Idle
package roll

import (
	"time"

	"github.com/itohio/godice/pkg/dice"
)

const (
	// CycleTicks is the number of faces drawn before the outcome is fixed.
	CycleTicks = 50
	// BlinkCycles is the number of reveal half-cycles.
	BlinkCycles = 7

	slowFrom    = 30 // Ticks 30..44 wait 2x the base tick
	slowestFrom = 45 // Ticks 45..49 wait 4x the base tick
)

// Phase is the animator stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCycling
	PhaseSettling
	PhaseRevealed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCycling:
		return "cycling"
	case PhaseSettling:
		return "settling"
	case PhaseRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Grade classifies an outcome for coloring.
type Grade int

const (
	GradeNeutral Grade = iota
	GradeCriticalSuccess
	GradeCriticalFailure
)

func (g Grade) String() string {
	switch g {
	case GradeCriticalSuccess:
		return "critical success"
	case GradeCriticalFailure:
		return "critical failure"
	default:
		return "neutral"
	}
}

// Classify grades outcome against the die bounds.
func Classify(spec dice.Spec, outcome int) Grade {
	switch outcome {
	case spec.High:
		return GradeCriticalSuccess
	case spec.Low:
		return GradeCriticalFailure
	default:
		return GradeNeutral
	}
}

// Value is one slot of the rolling window. Set is false until a face has
// shifted into the slot.
type Value struct {
	N   int
	Set bool
}

// Timing holds the animation intervals.
type Timing struct {
	Tick  time.Duration // Base cycling interval
	Blink time.Duration // Reveal half-cycle
	Hold  time.Duration // Dwell after the reveal
}

// DefaultTiming matches the hardware cadence.
func DefaultTiming() Timing {
	return Timing{
		Tick:  100 * time.Millisecond,
		Blink: 500 * time.Millisecond,
		Hold:  2 * time.Second,
	}
}

// CycleDelay returns the wait after cycling tick i.
func CycleDelay(i int, base time.Duration) time.Duration {
	switch {
	case i < slowFrom:
		return base
	case i < slowestFrom:
		return 2 * base
	default:
		return 4 * base
	}
}

// Duration is the total wall time of one roll.
func (t Timing) Duration() time.Duration {
	var d time.Duration
	for i := range CycleTicks {
		d += CycleDelay(i, t.Tick)
	}
	return d + BlinkCycles*t.Blink + t.Hold
}
