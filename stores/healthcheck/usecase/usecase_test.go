package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/domain/mocks"
	"github.com/x-xyz/xionmarket/stores/healthcheck/repository"
)

type HealthCheckTestSuite struct {
	suite.Suite
	gateway *mocks.Gateway
}

func (s *HealthCheckTestSuite) SetupTest() {
	s.gateway = &mocks.Gateway{}
}

func (s *HealthCheckTestSuite) TearDownTest() {
	s.gateway.AssertExpectations(s.T())
}

func (s *HealthCheckTestSuite) TestCheck() {
	s.gateway.On("Height", mock.Anything).Return(uint64(1234), nil).Once()
	uc := New(repository.New(nil, s.gateway))
	status, err := uc.Check(ctx.Background())
	s.Require().NoError(err)
	s.Equal(uint64(1234), status.Height)
	s.False(status.Records)
}

func (s *HealthCheckTestSuite) TestCheckChainDown() {
	s.gateway.On("Height", mock.Anything).Return(uint64(0), errors.New("connection refused")).Once()
	uc := New(repository.New(nil, s.gateway))
	_, err := uc.Check(ctx.Background())
	s.Error(err)
}

func (s *HealthCheckTestSuite) TestCheckZeroHeight() {
	s.gateway.On("Height", mock.Anything).Return(uint64(0), nil).Once()
	uc := New(repository.New(nil, s.gateway))
	_, err := uc.Check(ctx.Background())
	s.Error(err)
}

func TestHealthCheckTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckTestSuite))
}
