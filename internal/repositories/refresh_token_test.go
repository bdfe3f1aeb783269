package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RefreshTokenSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	repo   *RefreshTokenRepository
	ctx    context.Context
}

func TestRefreshTokenSuite(t *testing.T) {
	suite.Run(t, new(RefreshTokenSuite))
}

func (s *RefreshTokenSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.repo = NewRefreshTokenRepository(s.client)
	s.ctx = context.Background()
}

func (s *RefreshTokenSuite) TearDownTest() {
	_ = s.client.Close()
	s.mini.Close()
}

func (s *RefreshTokenSuite) TestSaveAndGet() {
	playerID := uuid.New()

	s.Require().NoError(s.repo.Save(s.ctx, "jti-1", playerID, time.Hour))

	got, ok, err := s.repo.Get(s.ctx, "jti-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(playerID, got)
	s.Equal(time.Hour, s.mini.TTL("refresh_token:jti-1"))
}

func (s *RefreshTokenSuite) TestGetUnknown() {
	got, ok, err := s.repo.Get(s.ctx, "missing")
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(uuid.Nil, got)
}

func (s *RefreshTokenSuite) TestExpires() {
	s.Require().NoError(s.repo.Save(s.ctx, "jti-2", uuid.New(), time.Minute))

	s.mini.FastForward(2 * time.Minute)

	_, ok, err := s.repo.Get(s.ctx, "jti-2")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RefreshTokenSuite) TestDelete() {
	s.Require().NoError(s.repo.Save(s.ctx, "jti-3", uuid.New(), time.Hour))

	deleted, err := s.repo.Delete(s.ctx, "jti-3")
	s.Require().NoError(err)
	s.True(deleted)

	_, ok, err := s.repo.Get(s.ctx, "jti-3")
	s.Require().NoError(err)
	s.False(ok)

	deleted, err = s.repo.Delete(s.ctx, "jti-3")
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *RefreshTokenSuite) TestCorruptRecord() {
	s.Require().NoError(s.mini.Set("refresh_token:bad", "not-a-uuid"))

	_, ok, err := s.repo.Get(s.ctx, "bad")
	s.Error(err)
	s.False(ok)
}

func (s *RefreshTokenSuite) TestServerDown() {
	s.mini.Close()

	err := s.repo.Save(s.ctx, "jti-4", uuid.New(), time.Hour)
	s.Error(err)
}
