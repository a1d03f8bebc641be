package model

import (
	"strconv"
	"strings"
)

// Category identifies one of the scoring rows on a score card
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
)

// NoCategory is returned by input that could not be understood. It is never valid.
const NoCategory Category = -1

// NumCategories is the number of scoring categories, and so the number of rounds in a game
const NumCategories = 13

var categoryNames = [NumCategories]string{
	"Ones", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"Three of a Kind", "Four of a Kind", "Full House",
	"Small Straight", "Large Straight", "Yahtzee", "Chance",
}

var categoryKeys = [NumCategories]string{
	"ones", "twos", "threes", "fours", "fives", "sixes",
	"three_of_a_kind", "four_of_a_kind", "full_house",
	"small_straight", "large_straight", "yahtzee", "chance",
}

// Valid returns true if c is one of the 13 scoring categories
func (c Category) Valid() bool {
	return c >= Ones && c <= Chance
}

// IsUpper returns true for Ones through Sixes
func (c Category) IsUpper() bool {
	return c >= Ones && c <= Sixes
}

// IsLower returns true for Three of a Kind through Chance
func (c Category) IsLower() bool {
	return c >= ThreeOfAKind && c <= Chance
}

// Face returns the pip value counted by an upper category, or 0 for any other category
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c) + 1
}

// String returns the display name of the category
func (c Category) String() string {
	if !c.Valid() {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Key returns the short machine-readable name of the category
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryKeys[c]
}

// ParseCategory accepts a key ("full_house"), a display name ("Full House")
// or a 1-based row number ("9")
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		c := Category(n - 1)
		if !c.Valid() {
			return 0, ErrInvalidCategory
		}
		return c, nil
	}

	normalized := strings.ToLower(strings.NewReplacer(" ", "_", "-", "_").Replace(s))
	for i, key := range categoryKeys {
		if key == normalized {
			return Category(i), nil
		}
	}
	return 0, ErrInvalidCategory
}

// AllCategories returns every category in score card order
func AllCategories() []Category {
	result := make([]Category, 0, NumCategories)
	for c := Ones; c <= Chance; c++ {
		result = append(result, c)
	}
	return result
}

// UpperCategories returns Ones through Sixes
func UpperCategories() []Category {
	return AllCategories()[:Sixes+1]
}

// LowerCategories returns Three of a Kind through Chance
func LowerCategories() []Category {
	return AllCategories()[ThreeOfAKind:]
}
