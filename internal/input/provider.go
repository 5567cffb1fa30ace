package input

import (
	"context"

	"cosmicstandoff/internal/model"
)

// Provider supplies validated configuration values and moves for a session.
// Implementations block until input resolves or the context is done; a
// cancelled context surfaces as the context's error.
type Provider interface {
	// BoardBounds obtains the board range, re-prompting until the minimum
	// span constraint holds.
	BoardBounds(ctx context.Context) (model.Bounds, error)

	// Move obtains the Captain's next move, re-prompting on tokens outside
	// the move set. Matching is case-insensitive.
	Move(ctx context.Context) (model.Move, error)

	// PlayAgain asks whether to start another session.
	PlayAgain(ctx context.Context) (bool, error)
}
