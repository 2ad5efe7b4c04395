package usecase

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/base/ptr"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/cw721"
)

var (
	mintGuidance = map[error]string{
		domain.ErrUnauthorized:  "Only the designated minter can mint",
		domain.ErrAlreadyExists: "Token id already claimed. Try a different ID",
	}
	transferGuidance = map[error]string{
		domain.ErrUnauthorized: "Only the owner or an approved operator can transfer this token",
		domain.ErrNotFound:     "Check the token id and the collection address",
	}
	queryGuidance = map[error]string{
		domain.ErrNotFound: "Check the token id and the collection address",
	}
)

type Cw721UseCaseCfg struct {
	Gateway domain.Gateway
	// Deployer supplies the signer address used as default mint owner
	Deployer  domain.Deployer
	Validator *validator.Validate
}

type impl struct {
	gateway  domain.Gateway
	deployer domain.Deployer
	validate *validator.Validate
}

func NewCw721UseCase(cfg *Cw721UseCaseCfg) cw721.UseCase {
	return &impl{
		gateway:  cfg.Gateway,
		deployer: cfg.Deployer,
		validate: cfg.Validator,
	}
}

func (im *impl) validateParams(ctx bCtx.Ctx, params interface{}) error {
	if err := im.validate.Struct(params); err != nil {
		ctx.WithFields(log.Fields{"err": err, "params": params}).Warn("validate.Struct failed")
		return domain.NewStepError(domain.StepValidate, xerrors.Errorf("%v: %w", err, domain.ErrInvalidInput), nil)
	}
	return nil
}

func (im *impl) query(ctx bCtx.Ctx, contract domain.Address, msg cw721.QueryMsg, out interface{}) error {
	data, err := im.gateway.Query(ctx, contract, msg)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "msg": msg.Tag()}).Error("gateway.Query failed")
		return domain.NewStepError(domain.StepQuery, err, queryGuidance)
	}
	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithFields(log.Fields{"err": err, "msg": msg.Tag(), "data": string(data)}).Error("json.Unmarshal failed")
		return domain.NewStepError(domain.StepQuery, err, nil)
	}
	return nil
}

func (im *impl) execute(ctx bCtx.Ctx, step domain.Step, contract domain.Address, msg cw721.ExecuteMsg, guidance map[error]string) (*domain.TxReport, error) {
	res, err := im.gateway.Execute(ctx, contract, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "msg": msg.Tag(), "contract": contract}).Error("gateway.Execute failed")
		return nil, domain.NewStepError(step, err, guidance)
	}
	return domain.NewTxReport(res), nil
}

func (im *impl) Mint(ctx bCtx.Ctx, params cw721.MintParams) (*domain.TxReport, error) {
	if err := im.validateParams(ctx, params); err != nil {
		return nil, err
	}

	owner := params.Owner
	if owner.IsEmpty() {
		sender, err := im.deployer.Sender(ctx)
		if err != nil {
			ctx.WithField("err", err).Error("deployer.Sender failed")
			return nil, domain.NewStepError(domain.StepMint, err, nil)
		}
		owner = sender
	}

	msg := cw721.MintMsg{
		TokenId:   params.TokenId,
		Owner:     owner,
		TokenUri:  ptr.String(params.TokenUri),
		Extension: params.Extension,
	}
	return im.execute(ctx, domain.StepMint, params.Contract, msg, mintGuidance)
}

func (im *impl) Transfer(ctx bCtx.Ctx, params cw721.TransferParams) (*domain.TxReport, error) {
	if err := im.validateParams(ctx, params); err != nil {
		return nil, err
	}
	return im.execute(ctx, domain.StepTransfer, params.Contract, cw721.TransferNftMsg{
		Recipient: params.Recipient,
		TokenId:   params.TokenId,
	}, transferGuidance)
}

func (im *impl) OwnerOf(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (*cw721.OwnerOfResponse, error) {
	res := &cw721.OwnerOfResponse{}
	if err := im.query(ctx, contract, cw721.OwnerOfQuery{TokenId: tokenId}, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) Tokens(ctx bCtx.Ctx, params cw721.TokensParams) (*cw721.TokensResponse, error) {
	if err := im.validateParams(ctx, params); err != nil {
		return nil, err
	}

	msg := cw721.TokensQuery{Owner: params.Owner, StartAfter: ptr.String(params.StartAfter)}
	if params.Limit > 0 {
		msg.Limit = ptr.Uint32(params.Limit)
	}

	res := &cw721.TokensResponse{}
	if err := im.query(ctx, params.Contract, msg, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) NumTokens(ctx bCtx.Ctx, contract domain.Address) (uint64, error) {
	res := &cw721.NumTokensResponse{}
	if err := im.query(ctx, contract, cw721.NumTokensQuery{}, res); err != nil {
		return 0, err
	}
	return res.Count, nil
}
