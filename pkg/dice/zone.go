package dice

// Zone is a selection hit box on the 240x240 round panel.
// X is half-open [MinX, MaxX); Y has no lower bound and an inclusive MaxY.
type Zone struct {
	MinX, MaxX int
	MaxY       int
}

// Contains reports whether (x, y) falls inside the zone.
func (z Zone) Contains(x, y int) bool {
	return x >= z.MinX && x < z.MaxX && y <= z.MaxY
}

// Hand tuned for the round glass. Do not derive these.
var zones = [Count]Zone{
	D4:  {MinX: 0, MaxX: 35, MaxY: 180},
	D6:  {MinX: 35, MaxX: 65, MaxY: 90},
	D8:  {MinX: 65, MaxX: 95, MaxY: 70},
	D20: {MinX: 95, MaxX: 145, MaxY: 65},
	D10: {MinX: 145, MaxX: 175, MaxY: 70},
	D12: {MinX: 175, MaxX: 205, MaxY: 90},
	D2:  {MinX: 205, MaxX: 240, MaxY: 180},
}

// Roll hot zone: 30 <= x < 210, 90 < y <= 240.
const (
	rollMinX = 30
	rollMaxX = 210
	rollMinY = 90
	rollMaxY = 240
)

// ZoneOf returns the selection zone of k.
func ZoneOf(k Kind) Zone {
	return zones[k]
}

// Map returns the first die whose zone contains (x, y), evaluated in
// precedence order. ok is false when no zone matches.
func Map(x, y int) (k Kind, ok bool) {
	for i, z := range zones {
		if z.Contains(x, y) {
			return Kind(i), true
		}
	}
	return 0, false
}

// IsRollZone reports whether (x, y) is inside the central roll hot zone.
func IsRollZone(x, y int) bool {
	return x >= rollMinX && x < rollMaxX && y > rollMinY && y <= rollMaxY
}

// RollZone returns the hot zone as a rectangle (x, y, w, h) for drawing.
func RollZone() (x, y, w, h int) {
	return rollMinX, rollMinY, rollMaxX - rollMinX, rollMaxY - rollMinY
}
