package strategy

import (
	"cosmicstandoff/internal/dependencies/random"
	"cosmicstandoff/internal/model"
)

// RandomWalkStrategy picks uniformly among the moves that stay on the board,
// including Still.
type RandomWalkStrategy struct {
	random random.Random
}

// NewRandomWalk creates a new RandomWalkStrategy
func NewRandomWalk(rnd random.Random) *RandomWalkStrategy {
	return &RandomWalkStrategy{random: rnd}
}

// Name returns the strategy's configuration name
func (s *RandomWalkStrategy) Name() string {
	return RandomWalk
}

// ChooseMove draws one move from the in-bounds candidate set
func (s *RandomWalkStrategy) ChooseMove(alien, captain model.Coordinate, bounds model.Bounds) model.Move {
	var legal []model.Move
	for _, mv := range model.Moves() {
		if inBounds(alien, mv, bounds) {
			legal = append(legal, mv)
		}
	}
	if len(legal) == 0 {
		// Still is always legal for an in-bounds agent; this is a guard, not
		// a reachable branch.
		return model.MoveStill
	}
	return legal[s.random.Intn(len(legal))]
}
