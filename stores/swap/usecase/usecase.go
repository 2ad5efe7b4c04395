package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
	"github.com/x-xyz/xionmarket/service/cache"
)

type SwapUseCaseCfg struct {
	Gateway domain.Gateway
	// RecordRepo is optional; successful transactions are recorded when set
	RecordRepo swap.RecordRepo
	// ConfigCache is optional; marketplace config queries are cached when set
	ConfigCache cache.Service
	Validator   *validator.Validate
	// ConfirmDelay is the pause before a purchase, 0 means swap.DefaultConfirmDelay
	ConfirmDelay time.Duration
}

type impl struct {
	gateway      domain.Gateway
	recordRepo   swap.RecordRepo
	configCache  cache.Service
	validate     *validator.Validate
	confirmDelay time.Duration

	timeNow func() time.Time
	newId   func(now time.Time) string
}

func NewSwapUseCase(cfg *SwapUseCaseCfg) swap.UseCase {
	delay := cfg.ConfirmDelay
	if delay == 0 {
		delay = swap.DefaultConfirmDelay
	}
	return &impl{
		gateway:      cfg.Gateway,
		recordRepo:   cfg.RecordRepo,
		configCache:  cfg.ConfigCache,
		validate:     cfg.Validator,
		confirmDelay: delay,
		timeNow:      time.Now,
		newId:        newListingId,
	}
}

// newListingId returns listing-<unix millis>-<9 random chars>.
func newListingId(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("listing-%d-%s", now.UnixNano()/int64(time.Millisecond), suffix)
}

func (im *impl) validateParams(ctx bCtx.Ctx, params interface{}, guidance map[error]string) error {
	if err := im.validate.Struct(params); err != nil {
		// params may hold callbacks, which the json encoder rejects
		ctx.WithFields(log.Fields{"err": err, "params": fmt.Sprintf("%+v", params)}).Warn("validate.Struct failed")
		return domain.NewStepError(domain.StepValidate, xerrors.Errorf("%v: %w", err, domain.ErrInvalidInput), guidance)
	}
	return nil
}

func (im *impl) query(ctx bCtx.Ctx, contract domain.Address, msg swap.QueryMsg, out interface{}) error {
	data, err := im.gateway.Query(ctx, contract, msg)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "msg": msg.Tag()}).Error("gateway.Query failed")
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithFields(log.Fields{"err": err, "msg": msg.Tag(), "data": string(data)}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

// record keeps a local trace of a successful transaction. A failed write is only logged,
// the transaction itself has already landed.
func (im *impl) record(ctx bCtx.Ctx, r swap.Record, res *domain.TxResult) {
	if im.recordRepo == nil {
		return
	}
	r.TxHash = res.TxHash
	r.Height = res.Height
	r.CreatedAt = im.timeNow()
	if err := im.recordRepo.Create(ctx, &r); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": r.ListingId,
			"action":    r.Action,
		}).Warn("recordRepo.Create failed")
	}
}

func (im *impl) Details(ctx bCtx.Ctx, marketplace domain.Address, id string) (*swap.Swap, error) {
	listing := &swap.Swap{}
	if err := im.query(ctx, marketplace, swap.DetailsQuery{Id: id}, listing); err != nil {
		return nil, domain.NewStepError(domain.StepQuery, err, detailsGuidance)
	}
	return listing, nil
}

func (im *impl) Config(ctx bCtx.Ctx, marketplace domain.Address) (*swap.Config, error) {
	getter := func() (interface{}, error) {
		cfg := &swap.Config{}
		if err := im.query(ctx, marketplace, swap.ConfigQuery{}, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if im.configCache == nil {
		cfg, err := getter()
		if err != nil {
			return nil, domain.NewStepError(domain.StepQuery, err, nil)
		}
		return cfg.(*swap.Config), nil
	}

	cfg := &swap.Config{}
	if err := im.configCache.GetByFunc(ctx, marketplace.String(), cfg, getter); err != nil {
		ctx.WithFields(log.Fields{"err": err, "marketplace": marketplace}).Error("configCache.GetByFunc failed")
		return nil, domain.NewStepError(domain.StepQuery, err, nil)
	}
	return cfg, nil
}
