package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cosmicstandoff/internal/services/strategy"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "cosmicstandoff",
		Short: "Terminal standoff between a Captain and an Alien",
		Long: `cosmicstandoff is a turn-based pursuit game played on a square grid.

You are the Captain; the Alien hunts you (or flees, depending on its
strategy). The first agent to match the opponent's X or Y coordinate wins.`,
		SilenceUsage: true,
		// Bare invocation starts a game.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Score backend: file, memory, redis (env: STANDOFF_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.ScoreFile, "score-file", cfg.ScoreFile, "Score file path for the file backend (env: STANDOFF_SCORE_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis backend (env: STANDOFF_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy,
		fmt.Sprintf("Alien strategy: %s (env: STANDOFF_STRATEGY)", strings.Join(strategy.ValidStrategies(), ", ")))
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducible games, 0 for true randomness (env: STANDOFF_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file, empty to disable (env: STANDOFF_LOG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&cfg.QuietPauses, "quiet-pauses", cfg.QuietPauses, "Skip the dramatic pauses between turns")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoreCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
