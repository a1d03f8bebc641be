package model

// Unscored marks a score card cell that has not been filled in yet
const Unscored = -1

// Upper section bonus rule
const (
	UpperBonusThreshold = 63
	UpperBonus          = 35
)

// Totals are the derived rows of a score card
type Totals struct {
	Upper int // Sum of Ones through Sixes
	Bonus int // UpperBonus if Upper >= UpperBonusThreshold
	Lower int // Sum of Three of a Kind through Chance
	Grand int // Upper + Bonus + Lower
}

// ScoreCard is one player's column of the score sheet
type ScoreCard struct {
	Entries      [NumCategories]int // Unscored until recorded, then fixed
	RunningTotal int                // Sum of recorded entries, updated by Record
	Totals       Totals             // Set by FinalizeTotals
}

// NewScoreCard creates a card with every category unscored
func NewScoreCard() *ScoreCard {
	card := &ScoreCard{}
	for i := range card.Entries {
		card.Entries[i] = Unscored
	}
	return card
}

// NewScoreCards creates one empty card per player
func NewScoreCards(nPlayers int) []*ScoreCard {
	cards := make([]*ScoreCard, nPlayers)
	for i := range cards {
		cards[i] = NewScoreCard()
	}
	return cards
}

// IsOpen returns true if the category can still be scored
func (s *ScoreCard) IsOpen(c Category) bool {
	return c.Valid() && s.Entries[c] == Unscored
}

// Get returns the recorded points for a category and whether it has been scored
func (s *ScoreCard) Get(c Category) (int, bool) {
	if !c.Valid() || s.Entries[c] == Unscored {
		return 0, false
	}
	return s.Entries[c], true
}

// Record fills in a category. A category can only be recorded once.
func (s *ScoreCard) Record(c Category, points int) error {
	if !c.Valid() {
		return ErrInvalidCategory
	}
	if !s.IsOpen(c) {
		return ErrCategoryAlreadyScored
	}
	s.Entries[c] = points
	s.RunningTotal += points
	return nil
}

// OpenCategories returns the categories still available, in score card order
func (s *ScoreCard) OpenCategories() []Category {
	var open []Category
	for _, c := range AllCategories() {
		if s.IsOpen(c) {
			open = append(open, c)
		}
	}
	return open
}

// IsFull returns true once every category has been scored
func (s *ScoreCard) IsFull() bool {
	return len(s.OpenCategories()) == 0
}

// ComputeTotals derives the totals from the raw entries without modifying the card.
// Unscored cells count as zero.
func (s *ScoreCard) ComputeTotals() Totals {
	var t Totals
	for _, c := range UpperCategories() {
		if points, ok := s.Get(c); ok {
			t.Upper += points
		}
	}
	if t.Upper >= UpperBonusThreshold {
		t.Bonus = UpperBonus
	}
	for _, c := range LowerCategories() {
		if points, ok := s.Get(c); ok {
			t.Lower += points
		}
	}
	t.Grand = t.Upper + t.Bonus + t.Lower
	return t
}

// FinalizeTotals recomputes and stores the derived totals
func (s *ScoreCard) FinalizeTotals() Totals {
	s.Totals = s.ComputeTotals()
	return s.Totals
}
