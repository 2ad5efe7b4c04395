package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/database/mongoclient"
	"github.com/x-xyz/xionmarket/domain"
	hcdomain "github.com/x-xyz/xionmarket/domain/healthcheck"
)

type impl struct {
	mgoClient *mongoclient.Client
	gateway   domain.Gateway
}

// New creates new healthCheckRepo; mgoClient may be nil when no records are kept
func New(
	mgoClient *mongoclient.Client,
	gateway domain.Gateway,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
		gateway:   gateway,
	}
}

func (im *impl) PingDB(context ctx.Ctx) (bool, error) {
	if im.mgoClient == nil {
		return false, nil
	}
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return false, err
	}
	return true, nil
}

func (im *impl) PingChain(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, 5*time.Second)
	defer cancel()
	height, err := im.gateway.Height(ctx)
	if err != nil {
		context.WithField("err", err).Error("gateway.Height failed")
		return 0, err
	}
	return height, nil
}
