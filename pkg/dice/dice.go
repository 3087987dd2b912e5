// Package dice holds the fixed table of supported dice, the touch zones used
// to select them and the random source used to roll them.
package dice

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the supported dice.
// The numeric order is also the zone precedence order.
type Kind int

const (
	D4 Kind = iota
	D6
	D8
	D20
	D10
	D12
	D2
)

// Count is the number of supported dice.
const Count = 7

// Default is the die selected at boot.
const Default = D20

// ErrUnknownKind is returned when a label does not name a supported die.
var ErrUnknownKind = errors.New("unknown dice kind")

// Spec describes a single die.
type Spec struct {
	Label string // Caption label, e.g. "d20"
	Low   int    // Lowest face (inclusive)
	High  int    // Highest face (inclusive)
	Icon  string // Small selection icon asset
	Glyph string // Large glyph shown while selected
}

var specs = [Count]Spec{
	D4:  {Label: "d4", Low: 1, High: 4, Icon: "d4", Glyph: "d4_large"},
	D6:  {Label: "d6", Low: 1, High: 6, Icon: "d6", Glyph: "d6_large"},
	D8:  {Label: "d8", Low: 1, High: 8, Icon: "d8", Glyph: "d8_large"},
	D20: {Label: "d20", Low: 1, High: 20, Icon: "emblem", Glyph: "d20_large"},
	D10: {Label: "d10", Low: 1, High: 10, Icon: "d10", Glyph: "d10_large"},
	D12: {Label: "d12", Low: 1, High: 12, Icon: "d12", Glyph: "d12_large"},
	D2:  {Label: "d2", Low: 1, High: 2, Icon: "d2", Glyph: "d2_large"},
}

// Valid reports whether k is one of the supported dice.
func (k Kind) Valid() bool {
	return k >= 0 && k < Count
}

// Spec returns the description of k. It panics on an invalid kind.
func (k Kind) Spec() Spec {
	if !k.Valid() {
		panic(fmt.Sprintf("dice: invalid kind %d", int(k)))
	}
	return specs[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return specs[k].Label
}

// Kinds returns all dice in precedence order.
func Kinds() []Kind {
	kinds := make([]Kind, Count)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind resolves a label such as "d20" or "D20".
func ParseKind(label string) (Kind, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for i, s := range specs {
		if s.Label == label {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, label)
}
