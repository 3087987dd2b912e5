package roll

import (
	"time"

	"github.com/itohio/godice/pkg/dice"
)

// Roller draws one face of a die.
type Roller interface {
	Roll(spec dice.Spec) int
}

// Renderer draws the animation frames.
type Renderer interface {
	// RenderStart is called once when a roll begins.
	RenderStart(kind dice.Kind)
	// RenderCycle draws the rolling window after every cycling tick.
	RenderCycle(prev, curr, next Value)
	// RenderBlink draws one reveal half-cycle.
	RenderBlink(outcome int, grade Grade, visible bool)
}

// Session is the state of a roll in progress.
type Session struct {
	Kind        dice.Kind
	Spec        dice.Spec
	Phase       Phase
	TickCount   int
	Prev        Value
	Curr        Value
	Next        Value
	Outcome     int
	Grade       Grade
	BlinkCount  int
	HoldElapsed time.Duration // Dwell spent in Revealed
}

// Animator owns the roll session.
type Animator struct {
	timing   Timing
	roller   Roller
	renderer Renderer
	sleep    func(time.Duration)

	session  *Session
	onPhase  []func(Phase)
	onReveal []func(Session)
}

// New creates an idle animator.
func New(timing Timing, roller Roller, renderer Renderer) *Animator {
	return &Animator{
		timing:   timing,
		roller:   roller,
		renderer: renderer,
		sleep:    time.Sleep,
	}
}

// SetSleeper replaces the wait used by Run.
func (a *Animator) SetSleeper(fn func(time.Duration)) {
	a.sleep = fn
}

// OnPhase registers a callback invoked on every phase change.
func (a *Animator) OnPhase(fn func(Phase)) {
	a.onPhase = append(a.onPhase, fn)
}

// OnReveal registers a callback invoked once the outcome is fixed.
func (a *Animator) OnReveal(fn func(Session)) {
	a.onReveal = append(a.onReveal, fn)
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	if a.session == nil {
		return PhaseIdle
	}
	return a.session.Phase
}

// Active reports whether a roll is in progress.
func (a *Animator) Active() bool {
	return a.Phase() != PhaseIdle
}

// Session returns a copy of the roll in progress.
func (a *Animator) Session() (Session, bool) {
	if a.session == nil {
		return Session{}, false
	}
	return *a.session, true
}

// Start begins a roll of kind. It does nothing and returns false while a
// roll is already in progress.
func (a *Animator) Start(kind dice.Kind) bool {
	if a.session != nil {
		return false
	}
	a.session = &Session{
		Kind: kind,
		Spec: kind.Spec(),
	}
	a.renderer.RenderStart(kind)
	a.setPhase(PhaseCycling)
	return true
}

// Step performs one tick of the current phase and returns how long to wait
// before the next one. It returns 0 when idle and on the step that ends the
// roll.
func (a *Animator) Step() time.Duration {
	s := a.session
	if s == nil {
		return 0
	}

	switch s.Phase {
	case PhaseCycling:
		s.Prev, s.Curr = s.Curr, s.Next
		s.Next = Value{N: a.roller.Roll(s.Spec), Set: true}
		a.renderer.RenderCycle(s.Prev, s.Curr, s.Next)

		d := CycleDelay(s.TickCount, a.timing.Tick)
		s.TickCount++
		if s.TickCount == CycleTicks {
			s.Outcome = s.Curr.N
			s.Grade = Classify(s.Spec, s.Outcome)
			a.setPhase(PhaseSettling)
			for _, fn := range a.onReveal {
				fn(*s)
			}
		}
		return d

	case PhaseSettling:
		a.renderer.RenderBlink(s.Outcome, s.Grade, s.BlinkCount%2 == 0)
		s.BlinkCount++
		if s.BlinkCount == BlinkCycles {
			a.setPhase(PhaseRevealed)
		}
		return a.timing.Blink

	case PhaseRevealed:
		// First step holds the outcome on screen, the next one ends the roll.
		if s.HoldElapsed < a.timing.Hold {
			s.HoldElapsed = a.timing.Hold
			return a.timing.Hold
		}
		a.session = nil
		a.notify(PhaseIdle)
		return 0
	}

	return 0
}

// Run steps the roll to completion, waiting between ticks.
func (a *Animator) Run() {
	for a.Active() {
		if d := a.Step(); d > 0 {
			a.sleep(d)
		}
	}
}

func (a *Animator) setPhase(p Phase) {
	a.session.Phase = p
	a.notify(p)
}

func (a *Animator) notify(p Phase) {
	for _, fn := range a.onPhase {
		fn(p)
	}
}
