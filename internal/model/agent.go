package model

// AgentName identifies one of the two fixed entities on the board.
type AgentName string

const (
	AgentCaptain AgentName = "Captain"
	AgentAlien   AgentName = "Alien"
)

// Agent holds an entity's identity and current position. It makes no
// decisions of its own; callers validate a move against the bounds before
// committing it with MoveTo.
type Agent struct {
	Name     AgentName
	position Coordinate
}

// NewAgent creates an agent at the given starting position.
func NewAgent(name AgentName, pos Coordinate) *Agent {
	return &Agent{Name: name, position: pos}
}

// Position returns the agent's current coordinate.
func (a *Agent) Position() Coordinate {
	return a.position
}

// MoveTo commits a validated coordinate unconditionally.
func (a *Agent) MoveTo(pos Coordinate) {
	a.position = pos
}
