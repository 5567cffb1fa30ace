package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cosmicstandoff/internal/dependencies/clock"
	"cosmicstandoff/internal/dependencies/random"
	"cosmicstandoff/internal/input"
	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/services/engine"
	"cosmicstandoff/internal/services/strategy"
	"cosmicstandoff/internal/storage"
)

// firePause is the dramatic beat between spotting the opponent and firing.
const firePause = 1 * time.Second

// Outcome reports how a finished session ended.
type Outcome struct {
	Winner model.AgentName
	Turns  int
	Scores model.Scoreboard
}

// Session owns one run of the game from configuration to score persistence.
// Run may be invoked repeatedly on the same Session; each call starts a
// fresh game and only the persisted score carries over.
type Session struct {
	input    input.Provider
	strategy strategy.Strategy
	store    storage.ScoreStore
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	out      io.Writer
	engine   *engine.Engine
}

// New creates a session with the configured Alien strategy and score store.
func New(
	in input.Provider,
	strat strategy.Strategy,
	store storage.ScoreStore,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	out io.Writer,
) *Session {
	return &Session{
		input:    in,
		strategy: strat,
		store:    store,
		clock:    clk,
		random:   rnd,
		logger:   logger,
		out:      out,
		engine:   engine.New(in, strat, clk, logger, out),
	}
}

// Run plays one full game: load score, configure the board, place the
// agents, drive the turn engine, and persist the winner. A cancelled context
// returns ErrAborted with no score mutation.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	scores, err := s.store.Load(ctx)
	if err != nil {
		if aborted(err) {
			return nil, model.ErrAborted
		}
		// A broken score store never stops a game from starting.
		s.logger.Warn("could not load score", slog.String("error", err.Error()))
		fmt.Fprintln(s.out, "\nThe saved score could not be read; starting from a clean slate.")
		scores = model.NewScoreboard()
	}
	s.displayScore(scores)

	bounds, err := s.input.BoardBounds(ctx)
	if err != nil {
		return nil, abortOr(err)
	}
	fmt.Fprintf(s.out, "Your board size: %d units.\n", bounds.Span())
	s.logger.Info("board configured",
		slog.Int("min", bounds.Min),
		slog.Int("max", bounds.Max),
		slog.Int("span", bounds.Span()),
	)

	game := s.placeAgents(bounds)
	s.displayInitialPositions(game)

	for game.Active {
		result, err := s.engine.RunTurn(ctx, game)
		if err != nil {
			return nil, abortOr(err)
		}
		if result.State != engine.StateGameOver {
			continue
		}

		s.announceWinner(result.Winner)
		scores.Increment(result.Winner)
		if err := s.store.Save(ctx, scores); err != nil {
			s.logger.Warn("could not save score", slog.String("error", err.Error()))
			fmt.Fprintln(s.out, "The score could not be saved; this result will not persist.")
		}

		// TurnCount stops at the last completed turn; the decisive
		// turn still counts toward the total.
		return &Outcome{
			Winner: result.Winner,
			Turns:  game.TurnCount + 1,
			Scores: scores,
		}, nil
	}

	// Unreachable: the engine flips Active only through GameOver.
	return nil, model.ErrAborted
}

// placeAgents drops the Captain anywhere on the board and re-samples the
// Alien until both axis gaps reach the starting distance, which also rules
// out colliding or pre-aligned starts.
func (s *Session) placeAgents(bounds model.Bounds) *model.Game {
	captain := s.randomPosition(bounds)

	alien := s.randomPosition(bounds)
	for !farEnough(captain, alien, bounds.StartDistance()) {
		alien = s.randomPosition(bounds)
	}

	s.logger.Info("agents placed",
		slog.String("captain", captain.String()),
		slog.String("alien", alien.String()),
	)
	return model.NewGame(bounds, captain, alien)
}

func (s *Session) randomPosition(bounds model.Bounds) model.Coordinate {
	return model.Coordinate{
		X: bounds.Min + s.random.Intn(bounds.Span()),
		Y: bounds.Min + s.random.Intn(bounds.Span()),
	}
}

func farEnough(a, b model.Coordinate, minGap int) bool {
	return abs(a.X-b.X) >= minGap && abs(a.Y-b.Y) >= minGap
}

func (s *Session) displayScore(scores model.Scoreboard) {
	fmt.Fprintln(s.out, "\nCurrent score:")
	fmt.Fprintln(s.out)
	for _, name := range []model.AgentName{model.AgentCaptain, model.AgentAlien} {
		fmt.Fprintf(s.out, "-- %s: %d\n", name, scores.Get(name))
	}
}

func (s *Session) displayInitialPositions(game *model.Game) {
	fmt.Fprintln(s.out, "\nThe initial positions of your ship and the alien vessel, Captain.")
	fmt.Fprintln(s.out, "Prepare for battle!")
	fmt.Fprintln(s.out)
	for _, agent := range []*model.Agent{game.Captain, game.Alien} {
		pos := agent.Position()
		fmt.Fprintf(s.out, "-- %s X: %d\n", agent.Name, pos.X)
		fmt.Fprintf(s.out, "-- %s Y: %d\n", agent.Name, pos.Y)
	}
}

func (s *Session) announceWinner(winner model.AgentName) {
	if winner == model.AgentCaptain {
		fmt.Fprintln(s.out, "\nAlien at sight, Captain. Prepare to engage.")
		s.clock.Sleep(firePause)
		fmt.Fprintln(s.out, "\nBOOM! Direct hit, Captain!")
		fmt.Fprintln(s.out, "\nCongratulations Captain, you destroyed the alien and saved your species.")
		fmt.Fprintln(s.out, "The galaxy is safe once again.")
		return
	}

	fmt.Fprintln(s.out, "\nThe Alien has reached you, Captain. It's getting ready to shoot.")
	s.clock.Sleep(firePause)
	fmt.Fprintln(s.out, "\nYou have lost the battle, Captain.")
	fmt.Fprintln(s.out, "The invasion continues. Our fate is uncertain.")
}

// aborted reports whether the error means the player quit.
func aborted(err error) bool {
	return errors.Is(err, model.ErrAborted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// abortOr collapses every cancellation flavor into ErrAborted.
func abortOr(err error) error {
	if aborted(err) {
		return model.ErrAborted
	}
	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
