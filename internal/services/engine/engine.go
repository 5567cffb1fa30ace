package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cosmicstandoff/internal/dependencies/clock"
	"cosmicstandoff/internal/input"
	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/services/strategy"
)

// State identifies a step in the per-turn state machine.
type State string

const (
	StateAwaitingCaptainMove State = "awaiting_captain_move"
	StateAwaitingAlienMove   State = "awaiting_alien_move"
	StateEvaluating          State = "evaluating"
	StateContinue            State = "continue"
	StateGameOver            State = "game_over"
	StateAborted             State = "aborted"
)

// thinkingPause is how long the Alien appears to deliberate before moving.
const thinkingPause = 1 * time.Second

// TurnResult reports how one full turn ended.
type TurnResult struct {
	State  State
	Winner model.AgentName // set only when State is StateGameOver
}

// Engine drives one turn at a time: Captain move, Alien move, evaluation.
// It holds no game state of its own; the Game value is passed through every
// call.
type Engine struct {
	input    input.Provider
	strategy strategy.Strategy
	clock    clock.Clock
	logger   *slog.Logger
	out      io.Writer
}

// New creates a turn engine with the configured Alien strategy.
func New(in input.Provider, strat strategy.Strategy, clk clock.Clock, logger *slog.Logger, out io.Writer) *Engine {
	return &Engine{
		input:    in,
		strategy: strat,
		clock:    clk,
		logger:   logger,
		out:      out,
	}
}

// RunTurn executes one complete turn: the Captain moves first, then the
// Alien, and the win condition is evaluated only after both have moved.
func (e *Engine) RunTurn(ctx context.Context, game *model.Game) (TurnResult, error) {
	if err := ctx.Err(); err != nil {
		return TurnResult{State: StateAborted}, err
	}

	// AwaitingCaptainMove
	alignedByCaptain, err := e.captainMove(ctx, game)
	if err != nil {
		return TurnResult{State: StateAborted}, err
	}

	// AwaitingAlienMove
	e.alienMove(game)

	// Evaluating
	return e.evaluate(game, alignedByCaptain), nil
}

// captainMove requests moves from the input provider until one stays on the
// board, commits it, and reports whether it lined the agents up.
func (e *Engine) captainMove(ctx context.Context, game *model.Game) (bool, error) {
	for {
		mv, err := e.input.Move(ctx)
		if err != nil {
			return false, err
		}

		pos, res := model.ApplyMove(game.Captain.Position(), mv, game.Bounds)
		if res == model.MoveRejected {
			// Out-of-bounds gets its own message, distinct from the
			// provider's unrecognized-token error.
			fmt.Fprintf(e.out, "\nMoving %s would take you off the board, Captain. Pick another move.\n", mv)
			e.logger.Debug("captain move rejected",
				slog.String("move", string(mv)),
				slog.String("error", model.ErrOutOfBounds.Error()),
			)
			continue
		}

		game.Captain.MoveTo(pos)
		e.renderCaptainMove(game, mv)
		e.logger.Info("captain moved",
			slog.String("move", string(mv)),
			slog.String("position", pos.String()),
			slog.Int("turn", game.TurnCount),
		)
		return game.AgentsAligned(), nil
	}
}

// alienMove asks the strategy for a move and commits it. Strategies filter
// against the bounds, so a rejected move is an internal defect; it is logged
// and downgraded to Still rather than propagated.
func (e *Engine) alienMove(game *model.Game) {
	fmt.Fprintln(e.out, "\nThe Alien is deciding its move.")
	e.clock.Sleep(thinkingPause)

	mv := e.strategy.ChooseMove(game.Alien.Position(), game.Captain.Position(), game.Bounds)
	pos, res := model.ApplyMove(game.Alien.Position(), mv, game.Bounds)
	if res == model.MoveRejected {
		e.logger.Error("strategy returned an out-of-bounds move",
			slog.String("strategy", e.strategy.Name()),
			slog.String("move", string(mv)),
			slog.String("position", game.Alien.Position().String()),
			slog.String("error", model.ErrOutOfBounds.Error()),
		)
		mv = model.MoveStill
		pos = game.Alien.Position()
	}

	game.Alien.MoveTo(pos)
	e.renderAlienMove(game, mv)
	e.logger.Info("alien moved",
		slog.String("strategy", e.strategy.Name()),
		slog.String("move", string(mv)),
		slog.String("position", pos.String()),
		slog.Int("turn", game.TurnCount),
	)
}

// evaluate checks the win condition after both agents have moved. The winner
// is the agent whose move produced the alignment in force: an alignment the
// Captain created and the Alien left standing belongs to the Captain, one
// created by the Alien's own move belongs to the Alien.
func (e *Engine) evaluate(game *model.Game, alignedByCaptain bool) TurnResult {
	if !game.AgentsAligned() {
		game.TurnCount++
		return TurnResult{State: StateContinue}
	}

	game.Active = false
	winner := model.AgentAlien
	if alignedByCaptain {
		winner = model.AgentCaptain
	}

	e.logger.Info("game over",
		slog.String("winner", string(winner)),
		slog.Int("turns", game.TurnCount),
	)
	return TurnResult{State: StateGameOver, Winner: winner}
}

func (e *Engine) renderCaptainMove(game *model.Game, mv model.Move) {
	fmt.Fprintf(e.out, "\nCaptain, you moved %s.\n", mv)
	if mv == model.MoveStill {
		fmt.Fprintln(e.out, "Your position did not change:")
	} else {
		fmt.Fprintln(e.out, "Your new position:")
	}
	e.renderBoard(game)
}

func (e *Engine) renderAlienMove(game *model.Game, mv model.Move) {
	if mv == model.MoveStill {
		fmt.Fprintln(e.out, "\nThe Alien stayed Still.")
		fmt.Fprintln(e.out, "The positions did not change, Captain:")
	} else {
		fmt.Fprintf(e.out, "\nThe Alien has moved %s.\n", mv)
		fmt.Fprintln(e.out, "Here are the updated positions, Captain:")
	}
	e.renderBoard(game)
}

func (e *Engine) renderBoard(game *model.Game) {
	fmt.Fprintln(e.out)
	for _, agent := range []*model.Agent{game.Captain, game.Alien} {
		pos := agent.Position()
		fmt.Fprintf(e.out, "-- %s X: %d\n", agent.Name, pos.X)
		fmt.Fprintf(e.out, "-- %s Y: %d\n", agent.Name, pos.Y)
	}
}
