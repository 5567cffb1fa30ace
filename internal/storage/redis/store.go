package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/storage"
)

// scoreKey is the hash holding one field per player name.
const scoreKey = "cosmicstandoff:score"

// Store is a Redis-backed score store, for keeping a shared scoreboard
// outside the local filesystem.
type Store struct {
	client *redis.Client
}

// Ensure Store implements the interface
var _ storage.ScoreStore = (*Store)(nil)

// New creates a Redis store and verifies the connection
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load reads the score hash. An absent hash is a first run and yields zero
// counts.
func (s *Store) Load(ctx context.Context) (model.Scoreboard, error) {
	fields, err := s.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return nil, err
	}

	scores := model.NewScoreboard()
	for name, value := range fields {
		wins, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("corrupt score for %q: %w", name, err)
		}
		scores[model.AgentName(name)] = wins
	}
	return scores, nil
}

// Save writes one hash field per player
func (s *Store) Save(ctx context.Context, scores model.Scoreboard) error {
	fields := make(map[string]interface{}, len(scores))
	for name, wins := range scores {
		fields[string(name)] = wins
	}
	return s.client.HSet(ctx, scoreKey, fields).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
