package strategy

import (
	"fmt"

	"cosmicstandoff/internal/dependencies/random"
	"cosmicstandoff/internal/model"
)

// Strategy names
const (
	Aggressive = "aggressive"
	Defensive  = "defensive"
	RandomWalk = "random"
)

// Strategy decides the Alien's move each turn. Implementations are pure
// given the positions, the bounds, and the injected random source, and they
// filter candidates against the board model so a returned move always lands
// in bounds.
type Strategy interface {
	// Name returns the strategy's configuration name
	Name() string
	// ChooseMove selects the Alien's next move
	ChooseMove(alien, captain model.Coordinate, bounds model.Bounds) model.Move
}

// ValidStrategies returns all selectable strategy names
func ValidStrategies() []string {
	return []string{Aggressive, Defensive, RandomWalk}
}

// New constructs the named strategy variant
func New(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case Aggressive:
		return NewAggressive(), nil
	case Defensive:
		return NewDefensive(), nil
	case RandomWalk:
		return NewRandomWalk(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, name)
	}
}

// inBounds reports whether the move is legal from the position
func inBounds(pos model.Coordinate, mv model.Move, bounds model.Bounds) bool {
	_, res := model.ApplyMove(pos, mv, bounds)
	return res == model.MoveApplied
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
