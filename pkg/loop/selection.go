package loop

import (
	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/roll"
)

// Selection is the die the next roll will use.
type Selection struct {
	kind dice.Kind
}

// NewSelection creates a selection of kind, falling back to dice.Default
// for an invalid kind.
func NewSelection(kind dice.Kind) *Selection {
	if !kind.Valid() {
		kind = dice.Default
	}
	return &Selection{kind: kind}
}

// Kind returns the selected die.
func (s *Selection) Kind() dice.Kind {
	return s.kind
}

// Select changes the selection. The selection is frozen while a roll is in
// progress, in which case Select returns false.
func (s *Selection) Select(kind dice.Kind, phase roll.Phase) bool {
	if phase != roll.PhaseIdle || !kind.Valid() {
		return false
	}
	s.kind = kind
	return true
}
