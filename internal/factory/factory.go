package factory

import (
	"errors"
	"io"
	"log/slog"

	"cosmicstandoff/internal/dependencies/clock"
	"cosmicstandoff/internal/dependencies/random"
	"cosmicstandoff/internal/services/strategy"
	"cosmicstandoff/internal/storage"
	"cosmicstandoff/internal/storage/file"
	"cosmicstandoff/internal/storage/memory"
	redisstorage "cosmicstandoff/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.ScoreStore

	// Alien behavior
	Strategy strategy.Strategy

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the score backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// ScorePath is where the file backend keeps the score
	// If empty, defaults to file.DefaultPath()
	ScorePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Strategy names the Alien strategy
	// If empty, defaults to aggressive
	Strategy string
	// Seed makes the game reproducible when non-zero
	Seed int64
	// QuietPauses skips the dramatic sleeps between turns
	QuietPauses bool
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	strategyName := cfg.Strategy
	if strategyName == "" {
		strategyName = strategy.Aggressive
	}
	strat, err := strategy.New(strategyName, rnd)
	if err != nil {
		return nil, err
	}

	var clk clock.Clock = clock.New()
	if cfg.QuietPauses {
		clk = clock.NewNoPause()
	}

	return &App{
		Store:    store,
		Strategy: strat,
		Clock:    clk,
		Random:   rnd,
		Logger:   logger,
	}, nil
}

func newStore(cfg Config) (storage.ScoreStore, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		path := cfg.ScorePath
		if path == "" {
			path = file.DefaultPath()
		}
		return file.New(path), nil
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}
}
