package loop

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/godice/internal/log"
	"github.com/itohio/godice/pkg/config"
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/display"
	"github.com/itohio/godice/pkg/roll"
	"github.com/itohio/godice/pkg/touch"
	"github.com/itohio/godice/pkg/ui"
)

type harness struct {
	ctrl  *Controller
	mock  *touch.Mock
	rec   *display.Recorder
	slept []time.Duration
}

func newHarness(t *testing.T, opts Options, dedup bool, reports ...touch.Report) *harness {
	t.Helper()
	return newHarnessWith(t, touch.NewMock(true, reports...), opts, dedup)
}

func newHarnessWith(t *testing.T, mock *touch.Mock, opts Options, dedup bool) *harness {
	t.Helper()
	h := &harness{
		mock: mock,
		rec:  display.NewRecorder(),
	}
	screen := ui.NewScreen(h.rec, ui.DefaultPalette())
	h.ctrl = New(touch.NewSampler(h.mock, dedup), screen, dice.NewRoller(7), opts, nil)
	h.ctrl.SetSleeper(func(d time.Duration) { h.slept = append(h.slept, d) })
	h.ctrl.Start()
	h.rec.Reset()
	return h
}

func (h *harness) caption(t *testing.T) string {
	t.Helper()
	c, ok := h.rec.LastTextAt(ui.CaptionX, ui.CaptionY)
	require.True(t, ok, "caption drawn")
	return c.Text
}

// hotzone is a point inside the roll hot zone and outside every die zone.
var hotzone = touch.Point{X: 120, Y: 150}

func TestSelection(t *testing.T) {
	s := NewSelection(dice.Kind(99))
	assert.Equal(t, dice.D20, s.Kind(), "invalid initial kind falls back to d20")

	assert.True(t, s.Select(dice.D4, roll.PhaseIdle))
	assert.Equal(t, dice.D4, s.Kind())

	for _, p := range []roll.Phase{roll.PhaseCycling, roll.PhaseSettling, roll.PhaseRevealed} {
		assert.False(t, s.Select(dice.D6, p), p.String())
		assert.Equal(t, dice.D4, s.Kind())
	}
	assert.False(t, s.Select(dice.Kind(-1), roll.PhaseIdle))
}

func TestController_DefaultsToD20(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false)
	assert.Equal(t, dice.D20, h.ctrl.Selected())
	assert.True(t, h.ctrl.Present())

	assert.Equal(t, DefaultOptions().Timing.Tick, h.ctrl.Tick())
	assert.Equal(t, "Roll d20", h.caption(t))
}

// Scenario A: select d4 from the default d20.
func TestController_SelectD4(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false, touch.Tap(10, 120))
	require.Equal(t, dice.D20, h.ctrl.Selected())

	h.ctrl.Tick()
	assert.Equal(t, dice.D4, h.ctrl.Selected())
	assert.Equal(t, "Roll d4 ", h.caption(t))

	glyphs := h.rec.Filter(display.OpBitmap)
	require.Len(t, glyphs, 1)
	assert.Equal(t, "d4_large", glyphs[0].Text)
}

func TestController_SelectOutsideZones(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false, touch.Tap(120, 150))
	h.ctrl.Tick()
	assert.Equal(t, dice.D20, h.ctrl.Selected())
	assert.Empty(t, h.rec.Filter(display.OpBitmap), "no redraw without a zone")
	assert.Equal(t, roll.PhaseIdle, h.ctrl.Phase(), "a tap never rolls")
}

func TestController_IgnoresUnusableSamples(t *testing.T) {
	d4 := touch.Point{X: 10, Y: 120}
	h := newHarness(t, DefaultOptions(), false,
		touch.Report{Pressed: true},
		touch.Report{Point: d4, HasPoint: true, Gesture: touch.GestureLongPress, Pressed: true},
		touch.Report{Point: d4, HasPoint: true},
	)
	for range 3 {
		h.ctrl.Tick()
	}
	assert.Equal(t, dice.D20, h.ctrl.Selected())
	assert.Equal(t, roll.PhaseIdle, h.ctrl.Phase())
}

// Scenario B: roll a d2 in the default blocking mode.
func TestController_RollD2Blocking(t *testing.T) {
	opts := DefaultOptions()
	opts.Initial = dice.D2
	h := newHarness(t, opts, false, touch.SwipeUp(hotzone.X, hotzone.Y))
	p := ui.DefaultPalette()

	wait := h.ctrl.Tick()
	assert.Equal(t, opts.Timing.Tick, wait)
	assert.Equal(t, roll.PhaseIdle, h.ctrl.Phase(), "blocking roll ran to completion")
	assert.Len(t, h.slept, roll.CycleTicks+roll.BlinkCycles+1)

	var last display.Call
	curr := h.rec.TextsAt(ui.WindowCurrX, ui.WindowY)
	require.NotEmpty(t, curr)
	for _, c := range curr {
		assert.Contains(t, []string{"  ", " 1", " 2"}, c.Text)
		if c.Text != "  " {
			last = c
		}
	}

	switch last.Text {
	case " 2":
		assert.Equal(t, p.CriticalSuccess, last.FG)
	case " 1":
		assert.Equal(t, p.CriticalFailure, last.FG)
	default:
		t.Fatalf("unexpected outcome %q", last.Text)
	}

	assert.Equal(t, "Roll d2 ", h.caption(t))
}

func TestController_RollOutsideHotzone(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false, touch.SwipeUp(10, 20))
	h.ctrl.Tick()
	assert.Equal(t, roll.PhaseIdle, h.ctrl.Phase())
	assert.Empty(t, h.slept)
}

// Scenario C and the re-trigger guard, observable only in non-blocking mode.
func TestController_FrozenDuringRoll(t *testing.T) {
	opts := DefaultOptions()
	opts.NonBlocking = true
	h := newHarness(t, opts, false, touch.SwipeUp(hotzone.X, hotzone.Y))

	wait := h.ctrl.Tick()
	assert.Equal(t, roll.PhaseCycling, h.ctrl.Phase())
	assert.Equal(t, opts.Timing.Tick, wait, "first cycling step")

	s, ok := h.ctrl.Session()
	require.True(t, ok)
	require.Equal(t, dice.D20, s.Kind)

	h.mock.Push(touch.Tap(50, 60)) // d6
	h.ctrl.Tick()
	assert.Equal(t, dice.D20, h.ctrl.Selected(), "selection frozen while cycling")

	h.mock.Push(touch.SwipeUp(hotzone.X, hotzone.Y))
	h.ctrl.Tick()
	s, _ = h.ctrl.Session()
	assert.Equal(t, 3, s.TickCount, "second roll does not restart the session")

	for h.ctrl.Phase() == roll.PhaseCycling {
		h.ctrl.Tick()
	}
	require.Equal(t, roll.PhaseSettling, h.ctrl.Phase())
	s, _ = h.ctrl.Session()
	outcome := s.Outcome

	h.mock.Push(touch.Tap(50, 60))
	for h.ctrl.Phase() != roll.PhaseIdle {
		h.ctrl.Tick()
		if s, ok := h.ctrl.Session(); ok {
			assert.Equal(t, outcome, s.Outcome, "outcome fixed after cycling")
		}
	}
	assert.Equal(t, dice.D20, h.ctrl.Selected())

	// Idle again: selection is live.
	h.mock.Push(touch.Tap(50, 60))
	h.ctrl.Tick()
	assert.Equal(t, dice.D6, h.ctrl.Selected())
}

func TestController_InputDuringBlockingRoll(t *testing.T) {
	tests := []struct {
		name    string
		mock    *touch.Mock
		pending []touch.Report
	}{
		{"queued", touch.NewMock(true), []touch.Report{touch.SwipeUp(hotzone.X, hotzone.Y)}},
		{"latest wins", touch.NewLatestMock(true), []touch.Report{touch.Tap(50, 60), touch.SwipeUp(hotzone.X, hotzone.Y)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarnessWith(t, tt.mock, DefaultOptions(), false)

			sleeps := 0
			h.ctrl.SetSleeper(func(time.Duration) {
				sleeps++
				if sleeps == 10 {
					require.Equal(t, roll.PhaseCycling, h.ctrl.Phase())
					h.mock.Push(tt.pending...)
				}
			})

			h.mock.Push(touch.SwipeUp(hotzone.X, hotzone.Y))
			h.ctrl.Tick()
			require.Equal(t, roll.PhaseIdle, h.ctrl.Phase())
			rolled := sleeps
			assert.Equal(t, roll.CycleTicks+roll.BlinkCycles+1, rolled)

			h.rec.Reset()
			for range 3 {
				h.ctrl.Tick()
			}
			assert.Equal(t, rolled, sleeps, "swipe made mid-roll starts no second roll")
			assert.Equal(t, roll.PhaseIdle, h.ctrl.Phase())
			assert.Equal(t, dice.D20, h.ctrl.Selected())
			assert.Empty(t, h.rec.Filter(display.OpImage))
			assert.Zero(t, h.mock.Pending())
		})
	}
}

func TestController_NonBlockingHoldWait(t *testing.T) {
	opts := DefaultOptions()
	opts.NonBlocking = true
	h := newHarness(t, opts, false, touch.SwipeUp(hotzone.X, hotzone.Y))

	var waits []time.Duration
	for range roll.CycleTicks + roll.BlinkCycles + 2 {
		waits = append(waits, h.ctrl.Tick())
	}
	assert.Equal(t, roll.PhaseIdle, h.ctrl.Phase())

	n := len(waits)
	assert.Equal(t, opts.Timing.Hold, waits[n-2], "hold spent in revealed")
	assert.Equal(t, opts.Timing.Tick, waits[n-1], "idle cadence once the roll ends")
}

func TestController_CaptionIdempotent(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false)
	for range 5 {
		h.ctrl.Tick()
	}
	captions := h.rec.TextsAt(ui.CaptionX, ui.CaptionY)
	require.Len(t, captions, 5)
	for _, c := range captions {
		assert.Equal(t, captions[0], c)
	}
}

func TestController_RepeatedPress(t *testing.T) {
	tests := []struct {
		name    string
		dedup   bool
		redraws int
	}{
		{"dispatched twice", false, 2},
		{"deduplicated", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, DefaultOptions(), tt.dedup, touch.Tap(10, 120), touch.Tap(10, 120))
			h.ctrl.Tick()
			h.ctrl.Tick()
			assert.Len(t, h.rec.Filter(display.OpBitmap), tt.redraws)
			assert.Equal(t, dice.D4, h.ctrl.Selected())
		})
	}
}

func TestController_ShowZones(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowZones = true
	h := newHarness(t, opts, false)

	h.ctrl.Tick()
	assert.Len(t, h.rec.Filter(display.OpFill), 1+dice.Count)
}

func TestController_Start(t *testing.T) {
	var buf bytes.Buffer
	rec := display.NewRecorder()
	opts := DefaultOptions()
	opts.DeviceName = "CST816"
	ctrl := New(touch.NewSampler(touch.NewMock(false), false), ui.NewScreen(rec, ui.DefaultPalette()), dice.NewRoller(1), opts, log.New(&buf, log.LevelInfo))

	ctrl.Start()
	assert.False(t, ctrl.Present())
	assert.Contains(t, buf.String(), "CST816 not detected.")

	c, ok := rec.LastTextAt(ui.CaptionX, ui.CaptionY)
	require.True(t, ok)
	assert.Equal(t, "Roll d20", c.Text)
	assert.Len(t, rec.Filter(display.OpImage), dice.Count)
}

func TestController_NilSampler(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false)
	ctrl := New(touch.NewSampler(nil, false), ui.NewScreen(h.rec, ui.DefaultPalette()), dice.NewRoller(1), DefaultOptions(), nil)
	assert.NotPanics(t, func() {
		ctrl.Start()
		ctrl.Tick()
	})
	assert.False(t, ctrl.Present())
}

func TestController_Run(t *testing.T) {
	h := newHarness(t, DefaultOptions(), false, touch.Tap(10, 120))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := 0
	h.ctrl.SetSleeper(func(time.Duration) {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})

	err := h.ctrl.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, dice.D4, h.ctrl.Selected())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.Tick = 10 * time.Millisecond
	cfg.Loop.NonBlocking = true
	cfg.Simulator.ShowZones = true

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, opts.Timing.Tick)
	assert.Equal(t, cfg.Timing.Blink, opts.Timing.Blink)
	assert.Equal(t, cfg.Timing.Hold, opts.Timing.Hold)
	assert.True(t, opts.NonBlocking)
	assert.True(t, opts.ShowZones)
	assert.Equal(t, dice.D20, opts.Initial)
}

func TestOptionsFromConfig_InitialDie(t *testing.T) {
	cfg := config.Default()
	cfg.Dice.Initial = "D6"
	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, dice.D6, opts.Initial)

	c := New(touch.NewSampler(touch.NewMock(true), false), ui.NewScreen(display.NewRecorder(), ui.DefaultPalette()), dice.NewRoller(1), opts, nil)
	assert.Equal(t, dice.D6, c.Selected())

	cfg.Dice.Initial = "d100"
	_, err = OptionsFromConfig(cfg)
	assert.ErrorIs(t, err, dice.ErrUnknownKind)
}
