//go:build tinygo

package main

import "machine"

// Waveshare RP2040 1.28" round touch LCD.
const (
	// GC9A01 display on SPI1
	PIN_LCD_DC   = machine.GP8
	PIN_LCD_CS   = machine.GP9
	PIN_LCD_SCK  = machine.GP10
	PIN_LCD_MOSI = machine.GP11
	PIN_LCD_RST  = machine.GP12
	PIN_LCD_BL   = machine.GP25

	LCD_SPI_FREQUENCY = 40 * machine.MHz

	// CST816S touch controller on I2C1
	PIN_TP_SDA = machine.GP6
	PIN_TP_SCL = machine.GP7
	PIN_TP_RST = machine.GP22

	TP_I2C_FREQUENCY = 400 * machine.KHz
)
