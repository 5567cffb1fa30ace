package input

import (
	"context"

	"cosmicstandoff/internal/model"
)

// Scripted is a Provider fed from queues, for tests. An exhausted queue
// returns ErrAborted so a misconfigured test fails instead of looping.
type Scripted struct {
	BoundsQueue []model.Bounds
	MoveQueue   []model.Move
	AgainQueue  []bool

	boundsIndex int
	moveIndex   int
	againIndex  int
}

var _ Provider = (*Scripted)(nil)

// NewScripted creates an empty Scripted provider
func NewScripted() *Scripted {
	return &Scripted{}
}

// QueueBounds adds board bounds to the queue
func (s *Scripted) QueueBounds(bounds ...model.Bounds) {
	s.BoundsQueue = append(s.BoundsQueue, bounds...)
}

// QueueMoves adds Captain moves to the queue
func (s *Scripted) QueueMoves(moves ...model.Move) {
	s.MoveQueue = append(s.MoveQueue, moves...)
}

// QueueAgain adds play-again answers to the queue
func (s *Scripted) QueueAgain(answers ...bool) {
	s.AgainQueue = append(s.AgainQueue, answers...)
}

// BoardBounds returns the next queued bounds
func (s *Scripted) BoardBounds(ctx context.Context) (model.Bounds, error) {
	if err := ctx.Err(); err != nil {
		return model.Bounds{}, err
	}
	if s.boundsIndex >= len(s.BoundsQueue) {
		return model.Bounds{}, model.ErrAborted
	}
	bounds := s.BoundsQueue[s.boundsIndex]
	s.boundsIndex++
	return bounds, nil
}

// Move returns the next queued move
func (s *Scripted) Move(ctx context.Context) (model.Move, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.moveIndex >= len(s.MoveQueue) {
		return "", model.ErrAborted
	}
	mv := s.MoveQueue[s.moveIndex]
	s.moveIndex++
	return mv, nil
}

// PlayAgain returns the next queued answer
func (s *Scripted) PlayAgain(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.againIndex >= len(s.AgainQueue) {
		return false, model.ErrAborted
	}
	answer := s.AgainQueue[s.againIndex]
	s.againIndex++
	return answer, nil
}
