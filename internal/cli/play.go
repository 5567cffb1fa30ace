package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cosmicstandoff/internal/factory"
	"cosmicstandoff/internal/input"
	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/services/session"
	redisstorage "cosmicstandoff/internal/storage/redis"
)

const intro = `
                            ***Cosmic Standoff***

In a far away galaxy, you are the captain of an ultra-advanced spaceship,
your species last hope.

Looming nearby is an alien spaceship, ready for battle.
It's a high-stakes standoff: one wrong move could be your last.
Will your strategic skills lead to victory, or will the alien outmaneuver you?
Prepare yourself, Captain. The fate of your species is in your hands.


How to Play:
  - You and the alien take turns to move on the game board.
  - On your turn, you can move: Up, Down, Left, Right or stay Still.
  - The alien will also be able to choose between the same directions.
  - NOTE: Press Ctrl + C at any time to quit the game.

How to Win:
  - Your goal is to reach the alien's position, either in the X or Y coordinate.
  - The alien is also trying to reach you, so you must stay alert.
  - The first one to match the opponent's position in either axis, wins.
`

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}
}

func runPlay(cmd *cobra.Command) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := factory.New(factoryConfig(logger))
	if err != nil {
		return err
	}
	defer app.Store.Close()

	logger.Info("game starting",
		slog.String("storage", cfg.Storage),
		slog.String("strategy", app.Strategy.Name()),
		slog.Int64("seed", cfg.Seed),
	)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	provider := input.NewTerminal(cmd.InOrStdin(), out)
	sess := session.New(provider, app.Strategy, app.Store, app.Clock, app.Random, logger, out)

	fmt.Fprint(out, intro)

	for {
		if _, err := sess.Run(ctx); err != nil {
			return exitOnAbort(out, err)
		}

		again, err := provider.PlayAgain(ctx)
		if err != nil {
			return exitOnAbort(out, err)
		}
		if !again {
			fmt.Fprintln(out, "\nExiting the game...")
			return nil
		}
	}
}

// exitOnAbort turns a player quit into a clean exit; anything else is a
// real failure.
func exitOnAbort(out io.Writer, err error) error {
	if errors.Is(err, model.ErrAborted) {
		fmt.Fprintln(out, "\nExiting the game...")
		return nil
	}
	return err
}

// factoryConfig maps CLI flags onto the application factory.
func factoryConfig(logger *slog.Logger) factory.Config {
	fcfg := factory.Config{
		StorageType: cfg.Storage,
		ScorePath:   cfg.ScoreFile,
		Strategy:    cfg.Strategy,
		Seed:        cfg.Seed,
		QuietPauses: cfg.QuietPauses,
		Logger:      logger,
	}
	if cfg.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			redisCfg.URL = cfg.RedisURL
		}
		fcfg.RedisConfig = &redisCfg
	}
	return fcfg
}

// newLogger writes JSON logs to the configured file so log lines never mix
// with the game's terminal output. Without a file, logs are dropped.
func newLogger() (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), f.Close, nil
}
