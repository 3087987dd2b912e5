//go:build tinygo

//go:generate tinygo flash -target=pico

package main

import (
	"context"
	"machine"
	"os"
	"time"

	"tinygo.org/x/drivers/gc9a01"

	"github.com/itohio/godice/internal/log"
	"github.com/itohio/godice/pkg/assets"
	"github.com/itohio/godice/pkg/config"
	"github.com/itohio/godice/pkg/cst816"
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/display"
	"github.com/itohio/godice/pkg/loop"
	"github.com/itohio/godice/pkg/touch"
	"github.com/itohio/godice/pkg/ui"
)

func main() {
	cfg := config.Default()
	logger := log.New(os.Stdout, log.LevelFromString(cfg.Log.Level))

	lcd := initDisplay()
	panel := initTouch()
	panel.SetLogger(logger)

	// Let the panel settle before the first frame
	time.Sleep(time.Second)

	screen := ui.NewScreen(display.NewCanvas(lcd, assets.Images(), logger), ui.DefaultPalette())

	opts, err := loop.OptionsFromConfig(cfg)
	if err != nil {
		logger.Errorf("config: %v", err)
	}
	opts.DeviceName = "CST816"
	ctrl := loop.New(
		touch.NewSampler(panel, cfg.Touch.DedupRepeats),
		screen,
		dice.NewRoller(cfg.Random.Seed),
		opts,
		logger,
	)

	if err := ctrl.Run(context.Background()); err != nil {
		logger.Errorf("loop: %v", err)
	}
}

func initDisplay() *gc9a01.Device {
	machine.SPI1.Configure(machine.SPIConfig{
		Frequency: LCD_SPI_FREQUENCY,
		SCK:       PIN_LCD_SCK,
		SDO:       PIN_LCD_MOSI,
	})

	lcd := gc9a01.New(machine.SPI1, PIN_LCD_RST, PIN_LCD_CS, PIN_LCD_DC, PIN_LCD_BL)
	lcd.Configure(gc9a01.Config{
		Width:  display.Width,
		Height: display.Height,
	})

	PIN_LCD_BL.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_LCD_BL.High()

	return &lcd
}

func initTouch() *cst816.Device {
	machine.I2C1.Configure(machine.I2CConfig{
		Frequency: TP_I2C_FREQUENCY,
		SDA:       PIN_TP_SDA,
		SCL:       PIN_TP_SCL,
	})

	// Hardware reset
	PIN_TP_RST.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_TP_RST.Low()
	time.Sleep(10 * time.Millisecond)
	PIN_TP_RST.High()
	time.Sleep(50 * time.Millisecond)

	return cst816.New(machine.I2C1)
}
