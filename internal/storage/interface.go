package storage

import (
	"context"

	"cosmicstandoff/internal/model"
)

// ScoreStore persists win counts across sessions. A store is opened once,
// shared by consecutive sessions, and closed on every exit path including
// abort; a single writer is assumed.
type ScoreStore interface {
	// Load returns the persisted scoreboard. A store that has never been
	// written returns a zero-count scoreboard, not an error.
	Load(ctx context.Context) (model.Scoreboard, error)

	// Save persists the scoreboard, replacing any previous contents.
	Save(ctx context.Context, scores model.Scoreboard) error

	// Close releases the store handle.
	Close() error
}
