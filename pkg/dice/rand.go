package dice

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand used for rolling.
type Source interface {
	IntN(n int) int
}

// Roller draws uniform values for a die.
type Roller struct {
	src Source
}

// NewRoller creates a roller seeded with seed. A zero seed uses the clock.
func NewRoller(seed uint64) *Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Roller{
		src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewRollerFrom wraps an existing source.
func NewRollerFrom(src Source) *Roller {
	return &Roller{src: src}
}

// Roll returns a uniform value in [spec.Low, spec.High].
func (r *Roller) Roll(spec Spec) int {
	return spec.Low + r.src.IntN(spec.High-spec.Low+1)
}
