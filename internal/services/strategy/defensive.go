package strategy

import "cosmicstandoff/internal/model"

// DefensiveStrategy retreats from the Captain, widening the axis with the
// smaller remaining gap. Ties break to the Y axis.
type DefensiveStrategy struct{}

// NewDefensive creates a new DefensiveStrategy
func NewDefensive() *DefensiveStrategy {
	return &DefensiveStrategy{}
}

// Name returns the strategy's configuration name
func (s *DefensiveStrategy) Name() string {
	return Defensive
}

// ChooseMove widens the smaller gap first, trying the other axis when the
// board edge blocks retreat, and stays Still when boxed in.
func (s *DefensiveStrategy) ChooseMove(alien, captain model.Coordinate, bounds model.Bounds) model.Move {
	dx := alien.X - captain.X
	dy := alien.Y - captain.Y

	awayX := awayMoves(dx, model.MoveRight, model.MoveLeft)
	awayY := awayMoves(dy, model.MoveUp, model.MoveDown)

	var candidates []model.Move
	if abs(dx) < abs(dy) {
		candidates = append(awayX, awayY...)
	} else {
		candidates = append(awayY, awayX...)
	}

	for _, mv := range candidates {
		if inBounds(alien, mv, bounds) {
			return mv
		}
	}
	return model.MoveStill
}

// awayMoves returns the moves that widen a gap on one axis. A positive gap
// retreats in the positive direction and vice versa; a zero gap widens
// either way, positive direction first.
func awayMoves(gap int, positive, negative model.Move) []model.Move {
	switch {
	case gap > 0:
		return []model.Move{positive}
	case gap < 0:
		return []model.Move{negative}
	default:
		return []model.Move{positive, negative}
	}
}
