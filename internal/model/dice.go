package model

import (
	"slices"
	"strconv"
	"strings"
)

// Dice constants
const (
	NumDice = 5
	MinFace = 1
	MaxFace = 6
)

// Dice holds the face values of the five dice for the active turn
type Dice [NumDice]int

// Validate returns ErrInvalidDieValue if any face is outside [1, 6]
func (d Dice) Validate() error {
	for _, v := range d {
		if v < MinFace || v > MaxFace {
			return ErrInvalidDieValue
		}
	}
	return nil
}

// Sorted returns a copy of the dice in ascending order
func (d Dice) Sorted() Dice {
	sorted := d
	slices.Sort(sorted[:])
	return sorted
}

// Sum returns the total of all five dice
func (d Dice) Sum() int {
	sum := 0
	for _, v := range d {
		sum += v
	}
	return sum
}

// SumOf returns the total of the dice showing the given face
func (d Dice) SumOf(face int) int {
	sum := 0
	for _, v := range d {
		if v == face {
			sum += v
		}
	}
	return sum
}

// Distinct returns the distinct face values in ascending order
func (d Dice) Distinct() []int {
	sorted := d.Sorted()
	return slices.Compact(sorted[:])
}

// String formats the dice as "[1 2 3 4 5]"
func (d Dice) String() string {
	parts := make([]string, NumDice)
	for i, v := range d {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// RerollMask marks which dice positions to reroll
type RerollMask [NumDice]bool

// MaskOf builds a mask selecting the given 0-indexed positions.
// Out of range positions are ignored.
func MaskOf(positions ...int) RerollMask {
	var mask RerollMask
	for _, p := range positions {
		if p >= 0 && p < NumDice {
			mask[p] = true
		}
	}
	return mask
}

// Any returns true if at least one die is selected
func (m RerollMask) Any() bool {
	return m.Count() > 0
}

// Count returns the number of selected dice
func (m RerollMask) Count() int {
	count := 0
	for _, selected := range m {
		if selected {
			count++
		}
	}
	return count
}
