package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cosmicstandoff/internal/dependencies/mocks"
	"cosmicstandoff/internal/input"
	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/testutil"
)

// stubStrategy returns queued moves verbatim, bypassing the bounds filter so
// tests can exercise the engine's guard.
type stubStrategy struct {
	moves []model.Move
	index int
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) ChooseMove(alien, captain model.Coordinate, bounds model.Bounds) model.Move {
	if s.index >= len(s.moves) {
		return model.MoveStill
	}
	mv := s.moves[s.index]
	s.index++
	return mv
}

type EngineSuite struct {
	suite.Suite
	provider *input.Scripted
	clock    *mocks.MockClock
	out      *bytes.Buffer
	ctx      context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.provider = input.NewScripted()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *EngineSuite) newEngine(alienMoves ...model.Move) *Engine {
	return New(s.provider, &stubStrategy{moves: alienMoves}, s.clock, testutil.NopLogger(), s.out)
}

func (s *EngineSuite) newGame(captain, alien model.Coordinate) *model.Game {
	return model.NewGame(model.Bounds{Min: 0, Max: 10}, captain, alien)
}

func (s *EngineSuite) TestTurnAppliesBothMovesAndContinues() {
	game := s.newGame(model.Coordinate{X: 2, Y: 2}, model.Coordinate{X: 8, Y: 8})
	s.provider.QueueMoves(model.MoveUp)
	eng := s.newEngine(model.MoveDown)

	result, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(StateContinue, result.State)
	s.Equal(model.Coordinate{X: 2, Y: 3}, game.Captain.Position())
	s.Equal(model.Coordinate{X: 8, Y: 7}, game.Alien.Position())
	s.Equal(1, game.TurnCount)
	s.True(game.Active)
}

func (s *EngineSuite) TestCaptainIsRepromptedWhenMoveLeavesBoard() {
	game := s.newGame(model.Coordinate{X: 0, Y: 0}, model.Coordinate{X: 8, Y: 8})
	s.provider.QueueMoves(model.MoveLeft, model.MoveUp)
	eng := s.newEngine(model.MoveStill)

	result, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(StateContinue, result.State)
	s.Equal(model.Coordinate{X: 0, Y: 1}, game.Captain.Position())
	s.Contains(s.out.String(), "Moving Left would take you off the board, Captain.")
}

func (s *EngineSuite) TestAlienWinsWhenItsMoveCreatesAlignment() {
	game := s.newGame(model.Coordinate{X: 3, Y: 3}, model.Coordinate{X: 5, Y: 4})
	s.provider.QueueMoves(model.MoveStill)
	eng := s.newEngine(model.MoveDown) // alien lands on (5,3), sharing Y

	result, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(StateGameOver, result.State)
	s.Equal(model.AgentAlien, result.Winner)
	s.False(game.Active)
	s.Zero(game.TurnCount, "a winning turn does not increment the counter")
}

func (s *EngineSuite) TestCaptainWinsWhenAlignmentSurvivesAlienMove() {
	game := s.newGame(model.Coordinate{X: 2, Y: 4}, model.Coordinate{X: 3, Y: 7})
	s.provider.QueueMoves(model.MoveRight) // captain lands on (3,4), sharing X
	eng := s.newEngine(model.MoveUp)       // alien moves to (3,8), still aligned

	result, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(StateGameOver, result.State)
	s.Equal(model.AgentCaptain, result.Winner)
}

func (s *EngineSuite) TestAlienCanEscapeCaptainAlignment() {
	game := s.newGame(model.Coordinate{X: 2, Y: 4}, model.Coordinate{X: 3, Y: 7})
	s.provider.QueueMoves(model.MoveRight) // captain aligns on X=3
	eng := s.newEngine(model.MoveRight)    // alien breaks away to (4,7)

	result, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(StateContinue, result.State)
	s.True(game.Active)
}

func (s *EngineSuite) TestWinEvaluationMatchesAlignmentRule() {
	// Shared X ends the game even with differing Y.
	game := s.newGame(model.Coordinate{X: 3, Y: 2}, model.Coordinate{X: 3, Y: 7})
	s.Require().True(game.AgentsAligned())

	// Diagonal neighbors do not.
	game = s.newGame(model.Coordinate{X: 3, Y: 3}, model.Coordinate{X: 4, Y: 4})
	s.Require().False(game.AgentsAligned())
}

func (s *EngineSuite) TestRejectedStrategyMoveFallsBackToStill() {
	game := s.newGame(model.Coordinate{X: 5, Y: 9}, model.Coordinate{X: 0, Y: 5})
	s.provider.QueueMoves(model.MoveStill)
	eng := s.newEngine(model.MoveLeft) // illegal from x=0; the guard catches it

	result, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(StateContinue, result.State)
	s.Equal(model.Coordinate{X: 0, Y: 5}, game.Alien.Position())
	s.Contains(s.out.String(), "The Alien stayed Still.")
}

func (s *EngineSuite) TestAlienThinkingPauseUsesInjectedClock() {
	game := s.newGame(model.Coordinate{X: 2, Y: 2}, model.Coordinate{X: 8, Y: 8})
	s.provider.QueueMoves(model.MoveUp)
	eng := s.newEngine(model.MoveDown)

	_, err := eng.RunTurn(s.ctx, game)
	s.Require().NoError(err)

	s.Contains(s.out.String(), "The Alien is deciding its move.")
	s.Len(s.clock.Slept, 1)
}

func (s *EngineSuite) TestCancelledContextAbortsBeforeAnyMove() {
	game := s.newGame(model.Coordinate{X: 2, Y: 2}, model.Coordinate{X: 8, Y: 8})
	s.provider.QueueMoves(model.MoveUp)
	eng := s.newEngine(model.MoveDown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := eng.RunTurn(ctx, game)
	s.ErrorIs(err, context.Canceled)
	s.Equal(StateAborted, result.State)
	s.Equal(model.Coordinate{X: 2, Y: 2}, game.Captain.Position(), "no move is applied on abort")
}
