package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/deployment"
	"github.com/x-xyz/xionmarket/service/query"
)

type deploymentMongoRepo struct {
	q query.Mongo
}

func NewDeploymentRepo(q query.Mongo) deployment.Repo {
	return &deploymentMongoRepo{
		q: q,
	}
}

// selector matches one contract on one network; an empty field would widen the match.
func selector(id deployment.Id) (bson.M, error) {
	if id.Network == "" || id.ContractAddress.IsEmpty() {
		return nil, xerrors.Errorf("deployment id %+v: %w", id, domain.ErrInvalidInput)
	}
	return bson.M{"network": id.Network, "contractAddress": id.ContractAddress}, nil
}

func (r *deploymentMongoRepo) Upsert(ctx bCtx.Ctx, d *deployment.Deployment) error {
	sel, err := selector(d.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("selector failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableDeployments, sel, d); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  d.ToId(),
		}).Error("failed to upsert")
		return err
	}
	return nil
}

// FindLatest returns nil when nothing of contractType was deployed on network.
func (r *deploymentMongoRepo) FindLatest(ctx bCtx.Ctx, network string, contractType deployment.ContractType) (*deployment.Deployment, error) {
	res := []deployment.Deployment{}
	qry := bson.M{"network": network, "contractType": contractType}
	if err := r.q.Search(ctx, domain.TableDeployments, 0, 1, "-deployedAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	if len(res) == 0 {
		return nil, nil
	}
	return &res[0], nil
}

func (r *deploymentMongoRepo) FindAll(ctx bCtx.Ctx, network string) ([]deployment.Deployment, error) {
	res := []deployment.Deployment{}
	qry := bson.M{"network": network}
	if err := r.q.Search(ctx, domain.TableDeployments, 0, 0, "-deployedAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
