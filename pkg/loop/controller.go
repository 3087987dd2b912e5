// Package loop runs the device main loop: poll touch, update the selection
// or start a roll, animate the roll and redraw the caption.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/itohio/godice/internal/log"
	"github.com/itohio/godice/pkg/config"
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/roll"
	"github.com/itohio/godice/pkg/touch"
	"github.com/itohio/godice/pkg/ui"
)

// Options configure a Controller.
type Options struct {
	Timing roll.Timing
	// NonBlocking advances the roll one step per tick and keeps polling touch
	// while it animates. By default a roll runs to completion inside the tick.
	NonBlocking bool
	// ShowZones paints the touch zones every tick.
	ShowZones bool
	// Initial selection.
	Initial dice.Kind
	// DeviceName is used in the presence log line.
	DeviceName string
}

// DefaultOptions returns the device behaviour.
func DefaultOptions() Options {
	return Options{
		Timing:     roll.DefaultTiming(),
		Initial:    dice.Default,
		DeviceName: "Touch",
	}
}

// OptionsFromConfig builds options from cfg. It fails when the initial die
// is not one of the supported dice.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()
	if cfg.Dice.Initial != "" {
		k, err := dice.ParseKind(cfg.Dice.Initial)
		if err != nil {
			return opts, fmt.Errorf("initial die: %w", err)
		}
		opts.Initial = k
	}
	opts.Timing = roll.Timing{
		Tick:  cfg.Timing.Tick,
		Blink: cfg.Timing.Blink,
		Hold:  cfg.Timing.Hold,
	}
	opts.NonBlocking = cfg.Loop.NonBlocking
	opts.ShowZones = cfg.Simulator.ShowZones
	return opts, nil
}

// Controller owns the selection and the roll session.
type Controller struct {
	opts    Options
	sampler *touch.Sampler
	screen  *ui.Screen
	anim    *roll.Animator
	sel     *Selection
	log     *log.Logger
	sleep   func(time.Duration)

	present bool
}

// New creates a controller. logger may be nil.
func New(sampler *touch.Sampler, screen *ui.Screen, roller roll.Roller, opts Options, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Discard()
	}
	if opts.Timing.Tick <= 0 {
		opts.Timing = roll.DefaultTiming()
	}
	if opts.DeviceName == "" {
		opts.DeviceName = "Touch"
	}

	c := &Controller{
		opts:    opts,
		sampler: sampler,
		screen:  screen,
		anim:    roll.New(opts.Timing, roller, screen),
		sel:     NewSelection(opts.Initial),
		log:     logger,
	}
	c.SetSleeper(time.Sleep)

	c.anim.OnPhase(func(p roll.Phase) {
		c.log.Debugf("roll: %s", p)
	})
	c.anim.OnReveal(func(s roll.Session) {
		c.log.Infof("roll: %s -> %d (%s)", s.Kind, s.Outcome, s.Grade)
	})

	return c
}

// SetSleeper replaces the wait used between ticks and animation steps.
func (c *Controller) SetSleeper(fn func(time.Duration)) {
	c.sleep = fn
	c.anim.SetSleeper(fn)
}

// Selected returns the selected die.
func (c *Controller) Selected() dice.Kind {
	return c.sel.Kind()
}

// Phase returns the roll phase.
func (c *Controller) Phase() roll.Phase {
	return c.anim.Phase()
}

// Session returns the roll in progress.
func (c *Controller) Session() (roll.Session, bool) {
	return c.anim.Session()
}

// Present reports the result of the startup touch probe.
func (c *Controller) Present() bool {
	return c.present
}

// Start probes the touch controller and draws the initial screen. A missing
// controller is logged; the loop still runs.
func (c *Controller) Start() {
	c.present = c.sampler.Present()
	if c.present {
		c.log.Infof("%s detected.", c.opts.DeviceName)
	} else {
		c.log.Warnf("%s not detected.", c.opts.DeviceName)
	}

	c.screen.Clear()
	c.screen.DrawSelection(c.sel.Kind())
	c.screen.DrawCaption(c.sel.Kind())
}

// Tick runs one loop iteration and returns how long to wait before the next.
func (c *Controller) Tick() time.Duration {
	wait := c.opts.Timing.Tick

	smp := c.sampler.Next()
	if smp.Actionable() {
		c.dispatch(smp)
		c.sampler.Handled()
	} else if smp.Repeat {
		c.log.Debugf("touch: repeat at %d,%d suppressed", smp.Point.X, smp.Point.Y)
	}

	if c.anim.Active() {
		if c.opts.NonBlocking {
			if d := c.anim.Step(); d > 0 {
				wait = d
			}
		} else {
			c.anim.Run()
			// Touch is not polled during a blocking roll; drop what piled up.
			c.sampler.Discard()
		}
	}

	if c.opts.ShowZones && !c.anim.Active() {
		c.screen.DrawZones()
	}
	c.screen.DrawCaption(c.sel.Kind())

	return wait
}

func (c *Controller) dispatch(smp touch.Sample) {
	x, y := smp.Point.X, smp.Point.Y
	c.log.Debugf("touch: %s at %d,%d (gesture 0x%02x)", smp.Intent, x, y, uint8(smp.Gesture))

	switch smp.Intent {
	case touch.IntentSelect:
		k, ok := dice.Map(x, y)
		if !ok {
			return
		}
		if c.sel.Select(k, c.anim.Phase()) {
			c.screen.DrawSelection(k)
		}

	case touch.IntentRoll:
		if c.anim.Active() || !dice.IsRollZone(x, y) {
			return
		}
		c.log.Infof("roll: %s", c.sel.Kind())
		c.anim.Start(c.sel.Kind())
	}
}

// Run starts the controller and ticks until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	c.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.sleep(c.Tick())
	}
}
