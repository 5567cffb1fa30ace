package model

import (
	"fmt"
	"strings"
)

// Coordinate is a position on the board. It is a value type; equality is
// component-wise.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Aligned reports whether two coordinates share an X or Y value. A shared
// axis is the game's win condition.
func Aligned(a, b Coordinate) bool {
	return a.X == b.X || a.Y == b.Y
}

// MinBoardSpan is the smallest allowed Max-Min difference for a board,
// ensuring enough room for a meaningful chase.
const MinBoardSpan = 10

// Bounds is the inclusive coordinate range shared by both axes for one
// session.
type Bounds struct {
	Min int
	Max int
}

// Validate checks the minimum-span configuration constraint.
func (b Bounds) Validate() error {
	if b.Max-b.Min < MinBoardSpan {
		return ErrBoundsTooSmall
	}
	return nil
}

// Contains reports whether the coordinate is inside the bounds on both axes.
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= b.Min && c.X <= b.Max && c.Y >= b.Min && c.Y <= b.Max
}

// Span is the number of units the board covers along one axis.
func (b Bounds) Span() int {
	return b.Max - b.Min + 1
}

// StartDistance is the minimum per-axis gap between the agents when they are
// placed, half the board span.
func (b Bounds) StartDistance() int {
	return b.Span() / 2
}

// Move is one discrete action per turn, including staying still.
type Move string

const (
	MoveUp    Move = "Up"
	MoveDown  Move = "Down"
	MoveLeft  Move = "Left"
	MoveRight Move = "Right"
	MoveStill Move = "Still"
)

// Moves returns every legal move token.
func Moves() []Move {
	return []Move{MoveUp, MoveDown, MoveLeft, MoveRight, MoveStill}
}

// Delta returns the unit offset for the move. Up increases Y, Right
// increases X.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case MoveUp:
		return 0, 1
	case MoveDown:
		return 0, -1
	case MoveLeft:
		return -1, 0
	case MoveRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseMove matches a token against the move set, case-insensitively.
func ParseMove(token string) (Move, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for _, m := range Moves() {
		if normalized == strings.ToLower(string(m)) {
			return m, nil
		}
	}
	return "", ErrUnknownMove
}

// MoveResult reports whether ApplyMove committed a candidate position.
type MoveResult int

const (
	MoveApplied MoveResult = iota
	MoveRejected
)

// ApplyMove computes the position after the move. A candidate outside the
// bounds on either axis is rejected in full and the original position
// returned; positions are never clamped. The caller commits the result.
func ApplyMove(pos Coordinate, move Move, bounds Bounds) (Coordinate, MoveResult) {
	dx, dy := move.Delta()
	candidate := Coordinate{X: pos.X + dx, Y: pos.Y + dy}
	if !bounds.Contains(candidate) {
		return pos, MoveRejected
	}
	return candidate, MoveApplied
}
