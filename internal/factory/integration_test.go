package factory

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"cosmicstandoff/internal/input"
	"cosmicstandoff/internal/model"
	"cosmicstandoff/internal/services/session"
	"cosmicstandoff/internal/services/strategy"
)

type IntegrationSuite struct {
	suite.Suite
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.ctx = context.Background()
}

// Test: complete game flow from board setup to score persistence, with the
// aggressive Alien hunting a Captain who holds position.
func (s *IntegrationSuite) TestCompleteGameFlow() {
	app, err := NewTestApp(strategy.Aggressive)
	s.Require().NoError(err)

	// Placement: Captain at (0,0), Alien at (5,5).
	app.MockRandom.QueueIntn(0, 0, 5, 5)

	provider := input.NewScripted()
	provider.QueueBounds(model.Bounds{Min: 0, Max: 10})
	// The Alien needs nine moves to reach the Captain's column; the Captain
	// waits it out.
	for i := 0; i < 9; i++ {
		provider.QueueMoves(model.MoveStill)
	}

	out := &bytes.Buffer{}
	sess := session.New(provider, app.Strategy, app.Store, app.Clock, app.Random, app.Logger, out)

	outcome, err := sess.Run(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.AgentAlien, outcome.Winner)
	s.Equal(9, outcome.Turns)
	s.Equal(1, outcome.Scores.Get(model.AgentAlien))
	s.Zero(outcome.Scores.Get(model.AgentCaptain))

	// The loss is on the board for the next game.
	saved, err := app.Store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, saved.Get(model.AgentAlien))

	s.Contains(out.String(), "You have lost the battle, Captain.")
}

func (s *IntegrationSuite) TestNewWiresFileStorage() {
	path := filepath.Join(s.T().TempDir(), "score.json")

	app, err := New(Config{StorageType: StorageTypeFile, ScorePath: path})
	s.Require().NoError(err)
	defer app.Store.Close()

	scores, err := app.Store.Load(s.ctx)
	s.Require().NoError(err)
	s.Zero(scores.Get(model.AgentCaptain))

	scores.Increment(model.AgentCaptain)
	s.Require().NoError(app.Store.Save(s.ctx, scores))
	s.FileExists(path)
}

func (s *IntegrationSuite) TestNewDefaultsToAggressive() {
	app, err := New(Config{StorageType: StorageTypeMemory})
	s.Require().NoError(err)
	defer app.Store.Close()

	s.Equal(strategy.Aggressive, app.Strategy.Name())
}

func (s *IntegrationSuite) TestSeededRandomIsReproducible() {
	first, err := New(Config{StorageType: StorageTypeMemory, Seed: 42})
	s.Require().NoError(err)
	second, err := New(Config{StorageType: StorageTypeMemory, Seed: 42})
	s.Require().NoError(err)

	for i := 0; i < 10; i++ {
		s.Equal(first.Random.Intn(100), second.Random.Intn(100))
	}
}

func (s *IntegrationSuite) TestNewRejectsBadConfig() {
	_, err := New(Config{StorageType: "cassette"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err, "redis without connection settings")

	_, err = New(Config{StorageType: StorageTypeMemory, Strategy: "psychic"})
	s.ErrorIs(err, model.ErrUnknownStrategy)
}
