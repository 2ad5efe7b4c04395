package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/cw721"
	"github.com/x-xyz/xionmarket/domain/deployment"
)

var installGuidance = map[error]string{
	domain.ErrUnauthorized:      "The code may only be instantiated by permitted addresses",
	domain.ErrInsufficientFunds: "The deployer needs XION to pay for gas",
}

type DeploymentUseCaseCfg struct {
	Deployer domain.Deployer
	// Repo is optional; deployments are persisted when set
	Repo      deployment.Repo
	Validator *validator.Validate
	Network   string
	Denom     string
}

type impl struct {
	deployer domain.Deployer
	repo     deployment.Repo
	validate *validator.Validate
	network  string
	denom    string

	timeNow func() time.Time
}

func NewDeploymentUseCase(cfg *DeploymentUseCaseCfg) deployment.UseCase {
	denom := cfg.Denom
	if denom == "" {
		denom = domain.NativeDenom
	}
	return &impl{
		deployer: cfg.Deployer,
		repo:     cfg.Repo,
		validate: cfg.Validator,
		network:  cfg.Network,
		denom:    denom,
		timeNow:  time.Now,
	}
}

type install struct {
	contractType deployment.ContractType
	wasm         []byte
	codeId       domain.CodeId
	label        string
	admin        domain.Address
	denom        string
	fee          uint64
	msg          func(deployer domain.Address) interface{}
}

// deploy uploads the code unless a code id is given, instantiates it and saves the record.
func (im *impl) deploy(ctx bCtx.Ctx, in install) (*deployment.Deployment, error) {
	sender, err := im.deployer.Sender(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("deployer.Sender failed")
		return nil, domain.NewStepError(domain.StepUpload, err, nil)
	}

	d := &deployment.Deployment{
		Network:       im.network,
		ContractType:  in.contractType,
		CodeId:        in.codeId,
		Admin:         in.admin,
		Denom:         in.denom,
		FeePercentage: in.fee,
		Deployer:      sender,
	}
	if d.Admin.IsEmpty() {
		d.Admin = sender
	}

	if d.CodeId == 0 {
		codeId, res, err := im.deployer.Upload(ctx, in.wasm)
		if err != nil {
			ctx.WithFields(log.Fields{"err": err, "size": len(in.wasm)}).Error("deployer.Upload failed")
			return nil, domain.NewStepError(domain.StepUpload, err, installGuidance)
		}
		d.CodeId = codeId
		d.TxHashes.Upload = res.TxHash
		ctx.WithFields(log.Fields{"codeId": codeId, "txHash": res.TxHash}).Info("code uploaded")
	}

	addr, res, err := im.deployer.Instantiate(ctx, d.CodeId, in.label, d.Admin, in.msg(sender))
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "codeId": d.CodeId, "label": in.label}).Error("deployer.Instantiate failed")
		return nil, domain.NewStepError(domain.StepInstall, err, installGuidance)
	}
	d.ContractAddress = addr
	d.TxHashes.Instantiate = res.TxHash
	d.DeployedAt = im.timeNow()

	if im.repo != nil {
		if err := im.repo.Upsert(ctx, d); err != nil {
			ctx.WithFields(log.Fields{"err": err, "contract": addr}).Error("repo.Upsert failed")
			return d, domain.NewStepError(domain.StepSave, err, nil)
		}
	}
	return d, nil
}

func (im *impl) validateParams(ctx bCtx.Ctx, params interface{}) error {
	if err := im.validate.Struct(params); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Warn("validate.Struct failed")
		return domain.NewStepError(domain.StepValidate, xerrors.Errorf("%v: %w", err, domain.ErrInvalidInput), nil)
	}
	return nil
}

func (im *impl) DeployMarketplace(ctx bCtx.Ctx, params deployment.MarketplaceParams) (*deployment.Deployment, error) {
	if err := im.validateParams(ctx, params); err != nil {
		return nil, err
	}

	return im.deploy(ctx, install{
		contractType: deployment.ContractMarketplace,
		wasm:         params.Wasm,
		codeId:       params.CodeId,
		label:        params.Label,
		admin:        params.Admin,
		denom:        im.denom,
		fee:          params.FeePercentage,
		msg: func(deployer domain.Address) interface{} {
			admin := params.Admin
			if admin.IsEmpty() {
				admin = deployer
			}
			return deployment.MarketplaceInstantiateMsg{
				Admin:         admin,
				Denom:         im.denom,
				FeePercentage: params.FeePercentage,
			}
		},
	})
}

func (im *impl) DeployCw721(ctx bCtx.Ctx, params deployment.Cw721Params) (*deployment.Deployment, error) {
	if err := im.validateParams(ctx, params); err != nil {
		return nil, err
	}

	return im.deploy(ctx, install{
		contractType: deployment.ContractCw721,
		wasm:         params.Wasm,
		codeId:       params.CodeId,
		label:        params.Label,
		msg: func(deployer domain.Address) interface{} {
			minter := params.Minter
			if minter.IsEmpty() {
				minter = deployer
			}
			return cw721.InstantiateMsg{
				Name:   params.Name,
				Symbol: params.Symbol,
				Minter: minter,
			}
		},
	})
}

func (im *impl) Latest(ctx bCtx.Ctx, contractType deployment.ContractType) (*deployment.Deployment, error) {
	if im.repo == nil {
		return nil, domain.ErrNotImplemented
	}
	d, err := im.repo.FindLatest(ctx, im.network, contractType)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "contractType": contractType}).Error("repo.FindLatest failed")
		return nil, err
	}
	if d == nil {
		return nil, xerrors.Errorf("no %s deployed on %s: %w", contractType, im.network, domain.ErrNotFound)
	}
	return d, nil
}
