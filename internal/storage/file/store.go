package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/storage"
)

// Store persists the scoreboard as a JSON document on disk. It is the
// default backend and mirrors the score file the terminal game has always
// kept.
type Store struct {
	path string
}

// Ensure Store implements the interface
var _ storage.ScoreStore = (*Store)(nil)

// New creates a file store at the given path. The file is created lazily on
// the first Save.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the score file under the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cosmicstandoff", "score.json")
	}
	return filepath.Join(home, ".cosmicstandoff", "score.json")
}

// Load reads the scoreboard. A missing file is a first run and yields zero
// counts.
func (s *Store) Load(ctx context.Context) (model.Scoreboard, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewScoreboard(), nil
		}
		return nil, err
	}

	scores := model.NewScoreboard()
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// Save writes the scoreboard, creating the parent directory on first use.
func (s *Store) Save(ctx context.Context, scores model.Scoreboard) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Close is a no-op; the file is not held open between operations.
func (s *Store) Close() error {
	return nil
}
