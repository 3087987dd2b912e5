// Package ui lays out the dice screen: the selection ring, the caption under
// it and the rolling number window in the middle of the glass.
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/itohio/godice/pkg/assets"
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/display"
	"github.com/itohio/godice/pkg/roll"
)

// Ensure Screen renders roll animations.
var _ roll.Renderer = (*Screen)(nil)

// Layout positions.
const (
	GlyphX, GlyphY = 58, 58

	CaptionX, CaptionY = 56, 180

	WindowY     = 104
	WindowPrevX = 56
	WindowCurrX = 104
	WindowNextX = 152
	windowBlank = "        "

	clearY, clearH = 180, 60
)

// Palette holds the screen colors.
type Palette struct {
	Background      color.RGBA
	Foreground      color.RGBA
	Selected        color.RGBA
	Deselected      color.RGBA
	CriticalSuccess color.RGBA
	CriticalFailure color.RGBA
}

// DefaultPalette is the palette of the device.
func DefaultPalette() Palette {
	return Palette{
		Background:      display.RGB(0, 0, 0),
		Foreground:      display.RGB(255, 255, 255),
		Selected:        display.RGB(255, 255, 255),
		Deselected:      display.Hex(0x6a6a6a),
		CriticalSuccess: display.RGB(0, 128, 0),
		CriticalFailure: display.RGB(128, 0, 0),
	}
}

type panel struct {
	iconX, iconY   int16
	label          string
	labelX, labelY int16
}

var panels = [dice.Count]panel{
	dice.D4:  {iconX: 7, iconY: 70, label: "D4", labelX: 12, labelY: 97},
	dice.D6:  {iconX: 37, iconY: 40, label: "D6", labelX: 42, labelY: 67},
	dice.D8:  {iconX: 67, iconY: 20, label: "D8", labelX: 72, labelY: 47},
	dice.D20: {iconX: 101, iconY: 0, label: "D20", labelX: 110, labelY: 40},
	dice.D10: {iconX: 148, iconY: 20, label: "D10", labelX: 150, labelY: 47},
	dice.D12: {iconX: 178, iconY: 40, label: "D12", labelX: 183, labelY: 67},
	dice.D2:  {iconX: 210, iconY: 70, label: "D2", labelX: 213, labelY: 97},
}

// Screen draws the application onto a Display.
type Screen struct {
	d       display.Display
	palette Palette
}

// NewScreen creates a screen on d.
func NewScreen(d display.Display, palette Palette) *Screen {
	return &Screen{
		d:       d,
		palette: palette,
	}
}

// Palette returns the colors in use.
func (s *Screen) Palette() Palette {
	return s.palette
}

// Clear paints the whole panel with the background.
func (s *Screen) Clear() {
	s.d.FillRegion(0, 0, display.Width, display.Height, s.palette.Background)
}

// DrawSelection redraws the selection ring with kind highlighted and its
// large glyph in the middle.
func (s *Screen) DrawSelection(kind dice.Kind) {
	for _, k := range dice.Kinds() {
		p := panels[k]
		spec := k.Spec()

		s.d.DrawImage(spec.Icon, p.iconX, p.iconY)

		fg := s.palette.Deselected
		if k == kind {
			fg = s.palette.Selected
		}
		s.d.DrawText(display.FontSmall, p.label, p.labelX, p.labelY, fg, s.palette.Background)

		if k == kind {
			s.d.FillRegion(GlyphX, GlyphY, assets.GlyphSize, assets.GlyphSize, s.palette.Background)
			s.d.DrawBitmap(spec.Glyph, GlyphX, GlyphY)
		}
	}
}

// Caption returns the text under the ring, e.g. "Roll d4 ".
func Caption(kind dice.Kind) string {
	return fmt.Sprintf("Roll %-3s", kind.Spec().Label)
}

// DrawCaption draws the caption for kind.
func (s *Screen) DrawCaption(kind dice.Kind) {
	s.d.DrawText(display.FontLarge, Caption(kind), CaptionX, CaptionY, s.palette.Foreground, s.palette.Background)
}

// RenderStart clears the caption band and redraws the ring.
func (s *Screen) RenderStart(kind dice.Kind) {
	s.d.FillRegion(0, clearY, display.Width, clearH, s.palette.Background)
	s.DrawSelection(kind)
}

// RenderCycle draws the three slot rolling window.
func (s *Screen) RenderCycle(prev, curr, next roll.Value) {
	s.blankWindow()
	s.d.DrawText(display.FontLarge, slot(prev), WindowPrevX, WindowY, s.palette.Deselected, s.palette.Background)
	s.d.DrawText(display.FontLarge, slot(curr), WindowCurrX, WindowY, s.palette.Selected, s.palette.Background)
	s.d.DrawText(display.FontLarge, slot(next), WindowNextX, WindowY, s.palette.Deselected, s.palette.Background)
}

// RenderBlink draws one reveal half-cycle.
func (s *Screen) RenderBlink(outcome int, grade roll.Grade, visible bool) {
	s.blankWindow()
	if !visible {
		return
	}
	s.d.DrawText(display.FontLarge, slot(roll.Value{N: outcome, Set: true}), WindowCurrX, WindowY, s.GradeColor(grade), s.palette.Background)
}

// GradeColor returns the reveal color for grade.
func (s *Screen) GradeColor(grade roll.Grade) color.RGBA {
	switch grade {
	case roll.GradeCriticalSuccess:
		return s.palette.CriticalSuccess
	case roll.GradeCriticalFailure:
		return s.palette.CriticalFailure
	default:
		return s.palette.Foreground
	}
}

func (s *Screen) blankWindow() {
	s.d.DrawText(display.FontLarge, windowBlank, WindowPrevX, WindowY, s.palette.Foreground, s.palette.Background)
}

// slot right-aligns v in two columns. An unset slot is blank.
func slot(v roll.Value) string {
	if !v.Set {
		return strings.Repeat(" ", 2)
	}
	return fmt.Sprintf("%2d", v.N)
}
