// Package tracking records bet outcomes against the model's
// predictions and derives calibration and performance analytics.
package tracking

import (
	"context"
	"sync"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Store persists tracked bets. List returns bets in insertion order,
// which the streak analytics depend on.
type Store interface {
	Insert(ctx context.Context, bet models.TrackedBet) error
	Get(ctx context.Context, id string) (models.TrackedBet, error)
	Update(ctx context.Context, bet models.TrackedBet) error
	List(ctx context.Context) ([]models.TrackedBet, error)
	Clear(ctx context.Context) error
}

// MemoryStore is the in-process store. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	bets  map[string]models.TrackedBet
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bets: make(map[string]models.TrackedBet)}
}

// Insert stores a new bet.
func (s *MemoryStore) Insert(_ context.Context, bet models.TrackedBet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bets[bet.ID]; !exists {
		s.order = append(s.order, bet.ID)
	}
	s.bets[bet.ID] = bet
	return nil
}

// Get returns the bet with the given id or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (models.TrackedBet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bet, ok := s.bets[id]
	if !ok {
		return models.TrackedBet{}, models.ErrNotFound
	}
	return bet, nil
}

// Update overwrites an existing bet or returns ErrNotFound.
func (s *MemoryStore) Update(_ context.Context, bet models.TrackedBet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bets[bet.ID]; !ok {
		return models.ErrNotFound
	}
	s.bets[bet.ID] = bet
	return nil
}

// List returns all bets in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]models.TrackedBet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrackedBet, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.bets[id])
	}
	return out, nil
}

// Clear resets the store to empty. Used to recover from corrupt
// persisted state and by the export/reset command.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.bets = make(map[string]models.TrackedBet)
	return nil
}
