// Package rules decides whether a dice reading fits a category and what it scores.
// Every function here is pure.
package rules

import "github.com/mcoot/yahtzee-go/internal/model"

// Fixed lower section scores
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

// IsEligible returns true if the dice satisfy the category's pattern.
// Upper categories and Chance are always eligible; they simply score zero for a poor roll.
func IsEligible(d model.Dice, c model.Category) bool {
	switch c {
	case model.Ones, model.Twos, model.Threes, model.Fours, model.Fives, model.Sixes, model.Chance:
		return true
	case model.ThreeOfAKind:
		return longestRun(d) >= 3
	case model.FourOfAKind:
		return longestRun(d) >= 4
	case model.Yahtzee:
		return longestRun(d) == model.NumDice
	case model.FullHouse:
		return isFullHouse(d)
	case model.SmallStraight:
		return isSmallStraight(d)
	case model.LargeStraight:
		return isLargeStraight(d)
	default:
		return false
	}
}

// Score returns the points the dice are worth in the category, without checking eligibility
func Score(d model.Dice, c model.Category) int {
	switch c {
	case model.Ones, model.Twos, model.Threes, model.Fours, model.Fives, model.Sixes:
		return d.SumOf(c.Face())
	case model.ThreeOfAKind, model.FourOfAKind, model.Chance:
		return d.Sum()
	case model.FullHouse:
		return FullHouseScore
	case model.SmallStraight:
		return SmallStraightScore
	case model.LargeStraight:
		return LargeStraightScore
	case model.Yahtzee:
		return YahtzeeScore
	default:
		return 0
	}
}

// ComputeScore is the score to record for the category: Score if eligible, otherwise 0.
// An unknown category is a caller bug and returns ErrInvalidCategory.
func ComputeScore(d model.Dice, c model.Category) (int, error) {
	if !c.Valid() {
		return 0, model.ErrInvalidCategory
	}
	if !IsEligible(d, c) {
		return 0, nil
	}
	return Score(d, c), nil
}

// Evaluation is the result of checking one category against a dice reading
type Evaluation struct {
	Category model.Category
	Eligible bool
	Points   int // What ComputeScore would record
}

// EvaluateAll checks the dice against every category in score card order
func EvaluateAll(d model.Dice) []Evaluation {
	results := make([]Evaluation, 0, model.NumCategories)
	for _, c := range model.AllCategories() {
		eligible := IsEligible(d, c)
		points := 0
		if eligible {
			points = Score(d, c)
		}
		results = append(results, Evaluation{Category: c, Eligible: eligible, Points: points})
	}
	return results
}

// longestRun returns the length of the longest run of equal values in the sorted dice
func longestRun(d model.Dice) int {
	sorted := d.Sorted()
	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// isFullHouse matches AABBB or AAABB with A != B. Five of a kind is not a full house.
func isFullHouse(d model.Dice) bool {
	s := d.Sorted()
	if s[0] == s[4] {
		return false
	}
	threeTwo := s[0] == s[1] && s[1] == s[2] && s[3] == s[4]
	twoThree := s[0] == s[1] && s[2] == s[3] && s[3] == s[4]
	return threeTwo || twoThree
}

// isSmallStraight needs four consecutive distinct values. With one duplicate the four
// remaining values must all be consecutive; with none, either the lowest four or the
// highest four must be.
func isSmallStraight(d model.Dice) bool {
	distinct := d.Distinct()
	switch len(distinct) {
	case 4:
		return consecutive(distinct)
	case 5:
		return consecutive(distinct[:4]) || consecutive(distinct[1:])
	default:
		return false
	}
}

// isLargeStraight needs all five values distinct and consecutive
func isLargeStraight(d model.Dice) bool {
	distinct := d.Distinct()
	return len(distinct) == model.NumDice && consecutive(distinct)
}

func consecutive(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}
