package dice

import (
	"github.com/mcoot/yahtzee-go/internal/dependencies/random"
	"github.com/mcoot/yahtzee-go/internal/model"
)

// Roller randomizes dice using an injected random source
type Roller struct {
	random random.Random
}

// NewRoller creates a new Roller
func NewRoller(rnd random.Random) *Roller {
	return &Roller{random: rnd}
}

// Face returns a single uniformly random face in [1, 6]
func (r *Roller) Face() int {
	return model.MinFace + r.random.Intn(model.MaxFace-model.MinFace+1)
}

// RollAll replaces every die with a fresh value
func (r *Roller) RollAll(d *model.Dice) {
	for i := range d {
		d[i] = r.Face()
	}
}

// RerollSelected replaces only the selected dice and returns how many were rerolled.
// An empty mask leaves the dice untouched.
func (r *Roller) RerollSelected(d *model.Dice, mask model.RerollMask) int {
	rerolled := 0
	for i, selected := range mask {
		if selected {
			d[i] = r.Face()
			rerolled++
		}
	}
	return rerolled
}
