package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.Tick)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.Blink)
	assert.Equal(t, 2*time.Second, cfg.Timing.Hold)
	assert.Equal(t, "d20", cfg.Dice.Initial)
	assert.False(t, cfg.Touch.DedupRepeats)
	assert.Empty(t, cfg.Touch.SerialPort)
	assert.Equal(t, 115200, cfg.Touch.BaudRate)
	assert.False(t, cfg.Loop.NonBlocking)
	assert.Equal(t, uint64(0), cfg.Random.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, float32(2), cfg.Simulator.Scale)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
timing:
  tick: 50ms
  blink: 250ms
  hold: 1s

dice:
  initial: d6

touch:
  dedup_repeats: true
  serial_port: "/dev/ttyACM0"
  baud_rate: 9600

loop:
  non_blocking: true

random:
  seed: 1234

log:
  level: debug

simulator:
  scale: 3
  show_zones: true
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, cfg.Timing.Tick)
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.Blink)
	assert.Equal(t, time.Second, cfg.Timing.Hold)
	assert.Equal(t, "d6", cfg.Dice.Initial)
	assert.True(t, cfg.Touch.DedupRepeats)
	assert.Equal(t, "/dev/ttyACM0", cfg.Touch.SerialPort)
	assert.Equal(t, 9600, cfg.Touch.BaudRate)
	assert.True(t, cfg.Loop.NonBlocking)
	assert.Equal(t, uint64(1234), cfg.Random.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, float32(3), cfg.Simulator.Scale)
	assert.True(t, cfg.Simulator.ShowZones)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
timing:
  tick: 20ms
simulator:
  scale: 0
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.Timing.Tick)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.Blink) // default
	assert.Equal(t, 2*time.Second, cfg.Timing.Hold)         // default
	assert.Equal(t, "d20", cfg.Dice.Initial)                // default
	assert.Equal(t, 115200, cfg.Touch.BaudRate)             // default
	assert.Equal(t, float32(2), cfg.Simulator.Scale)        // default
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Touch.SerialPort = "/dev/ttyUSB0"
	cfg.Timing.Hold = 3 * time.Second
	cfg.Random.Seed = 7

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", loaded.Touch.SerialPort)
	assert.Equal(t, 3*time.Second, loaded.Timing.Hold)
	assert.Equal(t, uint64(7), loaded.Random.Seed)
}
