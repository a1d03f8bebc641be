package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ScoreCardSuite struct {
	suite.Suite
	card *ScoreCard
}

func TestScoreCardSuite(t *testing.T) {
	suite.Run(t, new(ScoreCardSuite))
}

func (s *ScoreCardSuite) SetupTest() {
	s.card = NewScoreCard()
}

func (s *ScoreCardSuite) TestNewScoreCardIsEmpty() {
	for _, c := range AllCategories() {
		s.True(s.card.IsOpen(c), c.String())
	}
	s.Equal(0, s.card.RunningTotal)
	s.Equal(Totals{}, s.card.Totals)
	s.Len(s.card.OpenCategories(), NumCategories)
}

func (s *ScoreCardSuite) TestNewScoreCardsCreatesOnePerPlayer() {
	cards := NewScoreCards(3)
	s.Len(cards, 3)
	s.NotSame(cards[0], cards[1])
}

func (s *ScoreCardSuite) TestRecordClosesCategory() {
	err := s.card.Record(FullHouse, 25)
	s.Require().NoError(err)

	s.False(s.card.IsOpen(FullHouse))
	points, ok := s.card.Get(FullHouse)
	s.True(ok)
	s.Equal(25, points)
	s.Equal(25, s.card.RunningTotal)
}

func (s *ScoreCardSuite) TestRecordZeroStillClosesCategory() {
	s.Require().NoError(s.card.Record(Yahtzee, 0))
	s.False(s.card.IsOpen(Yahtzee))
}

func (s *ScoreCardSuite) TestRecordTwiceFails() {
	s.Require().NoError(s.card.Record(Chance, 20))

	err := s.card.Record(Chance, 30)
	s.ErrorIs(err, ErrCategoryAlreadyScored)

	points, _ := s.card.Get(Chance)
	s.Equal(20, points)
	s.Equal(20, s.card.RunningTotal)
}

func (s *ScoreCardSuite) TestRecordInvalidCategory() {
	s.ErrorIs(s.card.Record(Category(13), 5), ErrInvalidCategory)
	s.ErrorIs(s.card.Record(Category(-1), 5), ErrInvalidCategory)
	s.False(s.card.IsOpen(Category(99)))
}

func (s *ScoreCardSuite) TestBonusAtExactlySixtyThree() {
	// 3 of each face: 3+6+9+12+15+18 = 63
	for _, c := range UpperCategories() {
		s.Require().NoError(s.card.Record(c, 3*c.Face()))
	}

	totals := s.card.FinalizeTotals()
	s.Equal(63, totals.Upper)
	s.Equal(35, totals.Bonus)
	s.Equal(98, totals.Grand)
}

func (s *ScoreCardSuite) TestNoBonusAtSixtyTwo() {
	// Same as above but threes scored 8 instead of 9
	for _, c := range UpperCategories() {
		points := 3 * c.Face()
		if c == Threes {
			points = 8
		}
		s.Require().NoError(s.card.Record(c, points))
	}

	totals := s.card.FinalizeTotals()
	s.Equal(62, totals.Upper)
	s.Equal(0, totals.Bonus)
	s.Equal(62, totals.Grand)
}

func (s *ScoreCardSuite) TestFinalizeTotalsSplitsSections() {
	s.Require().NoError(s.card.Record(Sixes, 24))
	s.Require().NoError(s.card.Record(LargeStraight, 40))
	s.Require().NoError(s.card.Record(Chance, 17))

	totals := s.card.FinalizeTotals()
	s.Equal(Totals{Upper: 24, Bonus: 0, Lower: 57, Grand: 81}, totals)
	s.Equal(totals, s.card.Totals)
	s.Equal(totals.Grand, s.card.RunningTotal)
}

func (s *ScoreCardSuite) TestFinalizeTotalsIsIdempotent() {
	s.Require().NoError(s.card.Record(Fives, 15))
	s.Require().NoError(s.card.Record(Yahtzee, 50))

	first := s.card.FinalizeTotals()
	second := s.card.FinalizeTotals()
	s.Equal(first, second)
}

func (s *ScoreCardSuite) TestIsFull() {
	for _, c := range AllCategories() {
		s.False(s.card.IsFull())
		s.Require().NoError(s.card.Record(c, 0))
	}
	s.True(s.card.IsFull())
	s.Empty(s.card.OpenCategories())
}
