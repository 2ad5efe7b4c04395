package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
	"github.com/x-xyz/xionmarket/service/query"
)

const defaultRecordLimit = 50

type recordMongoRepo struct {
	q query.Mongo
}

func NewRecordRepo(q query.Mongo) swap.RecordRepo {
	return &recordMongoRepo{
		q: q,
	}
}

func (r *recordMongoRepo) Create(ctx bCtx.Ctx, record *swap.Record) error {
	if err := r.q.Insert(ctx, domain.TableListingRecords, record); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": record.ListingId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *recordMongoRepo) FindAll(ctx bCtx.Ctx, marketplace domain.Address, listingId string, opts ...swap.RecordFindAllOptionsFunc) ([]swap.Record, error) {
	options, err := swap.GetRecordFindAllOptions(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("swap.GetRecordFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{"marketplace": marketplace}
	if listingId != "" {
		qry["listingId"] = listingId
	}

	offset, limit := int64(0), int64(defaultRecordLimit)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []swap.Record{}
	if err := r.q.Search(ctx, domain.TableListingRecords, int(offset), int(limit), "-createdAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
