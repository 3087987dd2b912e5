// Package cst816 implements a driver for the CST816S capacitive touch
// controller found on round 240x240 GC9A01 modules.
//
// The controller is read in a single burst per tick starting at the gesture
// register, so Point, Gesture and Pressed always describe the same report.
package cst816

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"

	"github.com/itohio/godice/internal/log"
	"github.com/itohio/godice/pkg/touch"
)

// Address is the fixed I2C address of the CST816S.
const Address = 0x15

const (
	regGesture   = 0x01
	regFingerNum = 0x02
	regXposH     = 0x03
	regXposL     = 0x04
	regYposH     = 0x05
	regYposL     = 0x06
	regChipID    = 0xA7

	burstLen = regYposL - regGesture + 1
)

// ErrNotDetected is returned when the chip id is not a CST816 variant.
var ErrNotDetected = errors.New("cst816 not detected")

// Ensure Device implements touch.Device.
var _ touch.Device = (*Device)(nil)

// Device is a CST816S on an I2C bus.
type Device struct {
	bus     drivers.I2C
	address uint16

	buf    [burstLen]byte
	report touch.Report
	err    error
	log    *log.Logger
}

// New creates a new device. The bus must already be configured.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:     bus,
		address: Address,
		log:     log.Discard(),
	}
}

// SetLogger sets where bus failures and recoveries are reported.
func (d *Device) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Discard()
	}
	d.log = l
}

// ChipID reads the chip identification register.
func (d *Device) ChipID() (uint8, error) {
	var id [1]byte
	if err := d.bus.Tx(d.address, []byte{regChipID}, id[:]); err != nil {
		return 0, fmt.Errorf("read chip id: %w", err)
	}
	return id[0], nil
}

// Probe checks the chip id.
func (d *Device) Probe() error {
	id, err := d.ChipID()
	if err != nil {
		return err
	}
	switch id {
	case 0xB4, 0xB5, 0xB6, 0xB7:
		return nil
	}
	return fmt.Errorf("%w: chip id 0x%02X", ErrNotDetected, id)
}

// DetectPresence reports whether a CST816 answers on the bus.
func (d *Device) DetectPresence() bool {
	return d.Probe() == nil
}

// Refresh reads gesture, finger count and coordinates in one transaction.
// On a bus error the report is cleared and the error kept in Err. Entering
// and leaving the error state is logged once each.
func (d *Device) Refresh() {
	err := d.bus.Tx(d.address, []byte{regGesture}, d.buf[:])
	switch {
	case err != nil && d.err == nil:
		d.log.Errorf("cst816: read touch: %v", err)
	case err == nil && d.err != nil:
		d.log.Infof("cst816: bus recovered")
	}
	d.err = err

	if err != nil {
		d.report = touch.Report{}
		return
	}
	d.report = decode(d.buf)
}

// Err returns the error of the last Refresh.
func (d *Device) Err() error {
	return d.err
}

// Point returns the last coordinate read.
func (d *Device) Point() (touch.Point, bool) {
	return d.report.Point, d.report.HasPoint
}

// Gesture returns the last gesture code read.
func (d *Device) Gesture() touch.Gesture {
	return d.report.Gesture
}

// Pressed reports whether at least one finger was down.
func (d *Device) Pressed() bool {
	return d.report.Pressed
}

// decode turns registers 0x01..0x06 into a report. Coordinates are 12 bit,
// split across a high nibble and a low byte.
func decode(b [burstLen]byte) touch.Report {
	x := int(b[regXposH-regGesture]&0x0F)<<8 | int(b[regXposL-regGesture])
	y := int(b[regYposH-regGesture]&0x0F)<<8 | int(b[regYposL-regGesture])
	return touch.Report{
		Point:    touch.Point{X: x, Y: y},
		HasPoint: true,
		Gesture:  touch.Gesture(b[0]),
		Pressed:  b[regFingerNum-regGesture] > 0,
	}
}
