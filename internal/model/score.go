package model

// Scoreboard maps a player name to their win count, persisted across
// sessions.
type Scoreboard map[AgentName]int

// NewScoreboard returns a scoreboard with both agents at zero wins.
func NewScoreboard() Scoreboard {
	return Scoreboard{
		AgentCaptain: 0,
		AgentAlien:   0,
	}
}

// Get returns the win count for the named player; missing names count zero.
func (s Scoreboard) Get(name AgentName) int {
	return s[name]
}

// Increment adds one win for the named player.
func (s Scoreboard) Increment(name AgentName) {
	s[name]++
}

// Clone returns an independent copy of the scoreboard.
func (s Scoreboard) Clone() Scoreboard {
	clone := make(Scoreboard, len(s))
	for name, wins := range s {
		clone[name] = wins
	}
	return clone
}
