package model

// Game is the mutable state for one session: the board bounds, both agents,
// and the turn counter. A fresh Game is created for every session; only the
// persisted scoreboard outlives it.
type Game struct {
	Bounds  Bounds
	Captain *Agent
	Alien   *Agent

	// TurnCount increments once per completed turn that does not end the
	// game. Active flips false when the win condition is met.
	TurnCount int
	Active    bool
}

// NewGame creates an active game with both agents placed.
func NewGame(bounds Bounds, captainPos, alienPos Coordinate) *Game {
	return &Game{
		Bounds:  bounds,
		Captain: NewAgent(AgentCaptain, captainPos),
		Alien:   NewAgent(AgentAlien, alienPos),
		Active:  true,
	}
}

// Distances returns the per-axis gaps, Alien minus Captain. They are derived
// from the positions each time, never stored.
func (g *Game) Distances() (dx, dy int) {
	captain := g.Captain.Position()
	alien := g.Alien.Position()
	return alien.X - captain.X, alien.Y - captain.Y
}

// AgentsAligned reports whether the agents currently share an axis.
func (g *Game) AgentsAligned() bool {
	return Aligned(g.Captain.Position(), g.Alien.Position())
}
