package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/yahtzee-go/internal/model"
	"github.com/mcoot/yahtzee-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	summaries map[model.GameID]*model.GameSummary
	order     []model.GameID // Insertion order, oldest first
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		summaries: make(map[model.GameID]*model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.summaries[summary.ID]; exists {
		s.removeFromOrder(summary.ID)
	}
	s.order = append(s.order, summary.ID)
	s.summaries[summary.ID] = summary
	return nil
}

func (s *Storage) GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrSummaryNotFound
	}
	return summary, nil
}

func (s *Storage) ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.GameSummary, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, s.summaries[s.order[i]])
	}

	// Newest first; games completed in the same millisecond keep reverse insertion order
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletedAt.UnixMilli() > result[j].CompletedAt.UnixMilli()
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *Storage) DeleteSummary(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.summaries, id)
	s.removeFromOrder(id)
	return nil
}

// removeFromOrder must be called with the write lock held
func (s *Storage) removeFromOrder(id model.GameID) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
