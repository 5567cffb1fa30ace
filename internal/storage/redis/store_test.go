package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"cosmicstandoff/internal/model"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewWithClient(client)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) TestLoadEmptyReturnsZeroCounts() {
	scores, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, scores.Get(model.AgentCaptain))
	s.Equal(0, scores.Get(model.AgentAlien))
}

func (s *StoreSuite) TestSaveThenLoadRoundTrips() {
	scores := model.NewScoreboard()
	scores.Increment(model.AgentCaptain)
	scores.Increment(model.AgentAlien)
	scores.Increment(model.AgentAlien)

	s.Require().NoError(s.store.Save(s.ctx, scores))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, loaded.Get(model.AgentCaptain))
	s.Equal(2, loaded.Get(model.AgentAlien))
}

func (s *StoreSuite) TestSaveOverwritesPreviousCounts() {
	first := model.NewScoreboard()
	first.Increment(model.AgentCaptain)
	s.Require().NoError(s.store.Save(s.ctx, first))

	first.Increment(model.AgentCaptain)
	s.Require().NoError(s.store.Save(s.ctx, first))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, loaded.Get(model.AgentCaptain))
}

func (s *StoreSuite) TestLoadCorruptFieldIsAnError() {
	s.mini.HSet(scoreKey, string(model.AgentCaptain), "many")

	_, err := s.store.Load(s.ctx)
	s.Error(err)
}
