package strategy

import "cosmicstandoff/internal/model"

// AggressiveStrategy closes in on the Captain, attacking along the axis with
// the larger remaining gap. Ties break to the X axis.
type AggressiveStrategy struct{}

// NewAggressive creates a new AggressiveStrategy
func NewAggressive() *AggressiveStrategy {
	return &AggressiveStrategy{}
}

// Name returns the strategy's configuration name
func (s *AggressiveStrategy) Name() string {
	return Aggressive
}

// ChooseMove moves toward the Captain on the wider axis, falling back to the
// narrower one, and to Still when no closing move is legal.
func (s *AggressiveStrategy) ChooseMove(alien, captain model.Coordinate, bounds model.Bounds) model.Move {
	dx := alien.X - captain.X
	dy := alien.Y - captain.Y

	closeX := model.MoveStill
	switch {
	case dx > 0:
		closeX = model.MoveLeft
	case dx < 0:
		closeX = model.MoveRight
	}

	closeY := model.MoveStill
	switch {
	case dy > 0:
		closeY = model.MoveDown
	case dy < 0:
		closeY = model.MoveUp
	}

	candidates := []model.Move{closeX, closeY}
	if abs(dy) > abs(dx) {
		candidates = []model.Move{closeY, closeX}
	}

	for _, mv := range candidates {
		if mv == model.MoveStill {
			// Gap already closed on this axis.
			continue
		}
		if inBounds(alien, mv, bounds) {
			return mv
		}
	}
	return model.MoveStill
}
