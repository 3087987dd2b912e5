package config

import (
	"time"
)

// Config represents the application configuration.
type Config struct {
	Timing    TimingConfig    `yaml:"timing"`
	Dice      DiceConfig      `yaml:"dice"`
	Touch     TouchConfig     `yaml:"touch"`
	Loop      LoopConfig      `yaml:"loop"`
	Random    RandomConfig    `yaml:"random"`
	Log       LogConfig       `yaml:"log"`
	Simulator SimulatorConfig `yaml:"simulator"`
}

// TimingConfig contains the loop and animation cadence.
type TimingConfig struct {
	Tick  time.Duration `yaml:"tick"`  // Idle tick and base cycling interval
	Blink time.Duration `yaml:"blink"` // Half-cycle of the reveal blink
	Hold  time.Duration `yaml:"hold"`  // Dwell after the reveal
}

// DiceConfig contains die selection configuration.
type DiceConfig struct {
	Initial string `yaml:"initial"` // Die selected at boot, e.g. "d20"
}

// TouchConfig contains touch input configuration.
type TouchConfig struct {
	DedupRepeats bool   `yaml:"dedup_repeats"` // Treat an identical press on consecutive ticks as one
	SerialPort   string `yaml:"serial_port"`   // Optional serial touch bridge (simulator only)
	BaudRate     int    `yaml:"baud_rate"`
}

// LoopConfig contains main loop configuration.
type LoopConfig struct {
	NonBlocking bool `yaml:"non_blocking"` // Step the roll once per tick instead of running it to completion
}

// RandomConfig contains random source configuration.
type RandomConfig struct {
	Seed uint64 `yaml:"seed"` // 0 = seed from the clock
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SimulatorConfig contains desktop simulator configuration.
type SimulatorConfig struct {
	Scale     float32 `yaml:"scale"`
	ShowZones bool    `yaml:"show_zones"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Timing: TimingConfig{
			Tick:  100 * time.Millisecond,
			Blink: 500 * time.Millisecond,
			Hold:  2 * time.Second,
		},
		Dice: DiceConfig{
			Initial: "d20",
		},
		Touch: TouchConfig{
			DedupRepeats: false,
			SerialPort:   "",
			BaudRate:     115200,
		},
		Log: LogConfig{
			Level: "info",
		},
		Simulator: SimulatorConfig{
			Scale: 2,
		},
	}
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Timing.Tick <= 0 {
		c.Timing.Tick = def.Timing.Tick
	}
	if c.Timing.Blink <= 0 {
		c.Timing.Blink = def.Timing.Blink
	}
	if c.Timing.Hold <= 0 {
		c.Timing.Hold = def.Timing.Hold
	}

	if c.Dice.Initial == "" {
		c.Dice.Initial = def.Dice.Initial
	}

	if c.Touch.BaudRate == 0 {
		c.Touch.BaudRate = def.Touch.BaudRate
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}

	if c.Simulator.Scale <= 0 {
		c.Simulator.Scale = def.Simulator.Scale
	}
}
