package memory

import (
	"context"
	"sync"

	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/storage"
)

// Store is an in-memory implementation of the score store, used by tests
// and throwaway sessions.
type Store struct {
	mu     sync.RWMutex
	scores model.Scoreboard
}

// Ensure Store implements the interface
var _ storage.ScoreStore = (*Store)(nil)

// New creates a new in-memory store
func New() *Store {
	return &Store{}
}

// Load returns a copy of the stored scoreboard, or zero counts when nothing
// has been saved.
func (s *Store) Load(ctx context.Context) (model.Scoreboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.scores == nil {
		return model.NewScoreboard(), nil
	}
	return s.scores.Clone(), nil
}

// Save replaces the stored scoreboard with a copy of the given one.
func (s *Store) Save(ctx context.Context, scores model.Scoreboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores = scores.Clone()
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
