package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	client, err := redis.NewClient("", nil)
	s.Assert().Nil(client)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestPing() {
	client, err := redis.NewClient(s.server.Addr(), &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Assert().NoError(redis.Ping(context.Background(), client))
}

func (s *ClientTestSuite) TestPingUnavailable() {
	client, err := redis.NewClient(s.server.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.server.Close()

	err = redis.Ping(context.Background(), client)
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(err))
}
