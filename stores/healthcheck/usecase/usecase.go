package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/ctx"
	hcdomain "github.com/x-xyz/xionmarket/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	records, err := im.repo.PingDB(context)
	if err != nil {
		return nil, err
	}
	height, err := im.repo.PingChain(context)
	if err != nil {
		return nil, err
	}
	if height == 0 {
		return nil, xerrors.New("chain reports height 0")
	}
	return &hcdomain.Status{Height: height, Records: records}, nil
}
