package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/godice/internal/log"
	"github.com/itohio/godice/pkg/assets"
	"github.com/itohio/godice/pkg/config"
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/display"
	"github.com/itohio/godice/pkg/loop"
	"github.com/itohio/godice/pkg/touch"
	"github.com/itohio/godice/pkg/ui"
)

// appState holds the simulator state.
type appState struct {
	cfg     *config.Config
	cfgPath string
	log     *log.Logger
	window  fyne.Window
	serial  *touch.Serial
}

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial touch bridge port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		zonesFlag  = flag.Bool("zones", false, "Paint the touch zones over the screen")
		debugFlag  = flag.Bool("debug", false, "Debug logging")
	)
	flag.Parse()

	logger := log.Default()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *portFlag != "" {
		cfg.Touch.SerialPort = *portFlag
	}
	if *zonesFlag {
		cfg.Simulator.ShowZones = true
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
	}
	logger.SetLevel(log.LevelFromString(cfg.Log.Level))

	state := &appState{
		cfg:     cfg,
		cfgPath: *configFlag,
		log:     logger,
	}

	// Screen: tinyfont canvas over a round framebuffer
	palette := ui.DefaultPalette()
	fb := display.NewFramebuffer(display.Width, display.Height, palette.Background)
	screen := ui.NewScreen(display.NewCanvas(fb, assets.Images(), logger), palette)

	// Touch: mouse input, or a real panel streamed over serial
	mouse := touch.NewLatestMock(true)
	var dev touch.Device = mouse
	opts, err := loop.OptionsFromConfig(cfg)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}
	opts.DeviceName = "Mouse touch"
	if cfg.Touch.SerialPort != "" {
		s := touch.NewSerial(cfg.Touch.SerialPort, cfg.Touch.BaudRate)
		if err := s.Connect(); err != nil {
			logger.Errorf("Serial touch bridge unavailable, using mouse: %v", err)
		} else {
			logger.Infof("Connected to serial port: %s", cfg.Touch.SerialPort)
			state.serial = s
			dev = s
			opts.DeviceName = "Serial touch"
		}
	}

	ctrl := loop.New(
		touch.NewSampler(dev, cfg.Touch.DedupRepeats),
		screen,
		dice.NewRoller(cfg.Random.Seed),
		opts,
		logger,
	)

	// Create Fyne application
	application := app.NewWithID("com.itohio.godice")
	window := application.NewWindow("Dice Roller")
	window.CenterOnScreen()
	state.window = window

	glass := newGlassWidget(fb, cfg.Simulator.Scale, mouse.Push)

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		showSettingsDialog(state)
	})
	toolbar := container.NewHBox(settingsBtn)

	window.SetContent(container.NewBorder(toolbar, nil, nil, nil, glass))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	window.SetOnClosed(func() {
		cancel()
		close(done)
		if state.serial != nil {
			if err := state.serial.Close(); err != nil {
				logger.Warnf("Failed to close serial port: %v", err)
			}
		}
	})

	go glass.run(done)
	go func() {
		if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Errorf("Loop stopped: %v", err)
		}
	}()

	window.ShowAndRun()
}
