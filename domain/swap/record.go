package swap

import (
	"time"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/domain"
)

type Action string

const (
	ActionCreate    Action = "create"
	ActionFinish    Action = "finish"
	ActionFinishFor Action = "finish_for"
	ActionCancel    Action = "cancel"
	ActionUpdate    Action = "update"
)

// Record is a local trace of a successful listing transaction.
type Record struct {
	Marketplace domain.Address `bson:"marketplace" json:"marketplace"`
	ListingId   string         `bson:"listingId" json:"listingId"`
	Action      Action         `bson:"action" json:"action"`
	Price       string         `bson:"price,omitempty" json:"price,omitempty"`
	Recipient   domain.Address `bson:"recipient,omitempty" json:"recipient,omitempty"`
	TxHash      domain.TxHash  `bson:"txHash" json:"txHash"`
	Height      int64          `bson:"height" json:"height"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

type RecordFindAllOptions struct {
	Offset *int64
	Limit  *int64
}

type RecordFindAllOptionsFunc func(*RecordFindAllOptions) error

func GetRecordFindAllOptions(opts ...RecordFindAllOptionsFunc) (RecordFindAllOptions, error) {
	res := RecordFindAllOptions{}
	for _, o := range opts {
		if err := o(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithPagination(offset int64, limit int64) RecordFindAllOptionsFunc {
	return func(options *RecordFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type RecordRepo interface {
	Create(ctx bCtx.Ctx, record *Record) error
	FindAll(ctx bCtx.Ctx, marketplace domain.Address, listingId string, opts ...RecordFindAllOptionsFunc) ([]Record, error)
}
