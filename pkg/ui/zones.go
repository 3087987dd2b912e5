package ui

import (
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/display"
)

var zoneColors = [2]uint32{0x0000ff, 0x00ff00}

// DrawZones paints the roll hotzone and the selection zones so the touch
// table can be checked against the artwork.
func (s *Screen) DrawZones() {
	x, y, w, h := dice.RollZone()
	s.d.FillRegion(int16(x), int16(y), int16(w), int16(h), s.palette.Foreground)

	for i, k := range dice.Kinds() {
		z := dice.ZoneOf(k)
		top := zoneTop(k)
		s.d.FillRegion(int16(z.MinX), top, int16(z.MaxX-z.MinX), int16(z.MaxY)-top, display.Hex(zoneColors[i%2]))
	}
}

// zoneTop is where the overlay of a zone starts. The zones themselves extend
// to the top edge; the overlay covers only the part around the icon.
func zoneTop(k dice.Kind) int16 {
	return panels[k].iconY
}
