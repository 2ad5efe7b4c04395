package deployment

import (
	"time"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/domain"
)

type ContractType string

const (
	ContractMarketplace ContractType = "marketplace"
	ContractCw721       ContractType = "cw721"
)

type TxHashes struct {
	Upload      domain.TxHash `bson:"upload,omitempty" json:"upload,omitempty"`
	Instantiate domain.TxHash `bson:"instantiate" json:"instantiate"`
}

// Deployment records where a contract was installed.
type Deployment struct {
	Network         string         `bson:"network" json:"network"`
	ContractType    ContractType   `bson:"contractType" json:"contractType"`
	CodeId          domain.CodeId  `bson:"codeId" json:"codeId"`
	ContractAddress domain.Address `bson:"contractAddress" json:"contractAddress"`
	Admin           domain.Address `bson:"admin,omitempty" json:"admin,omitempty"`
	Denom           string         `bson:"denom,omitempty" json:"denom,omitempty"`
	FeePercentage   uint64         `bson:"feePercentage,omitempty" json:"feePercentage,omitempty"`
	Deployer        domain.Address `bson:"deployer" json:"deployer"`
	TxHashes        TxHashes       `bson:"txHashes" json:"txHashes"`
	DeployedAt      time.Time      `bson:"deployedAt" json:"deployedAt"`
}

type Id struct {
	Network         string         `bson:"network"`
	ContractAddress domain.Address `bson:"contractAddress"`
}

func (d *Deployment) ToId() Id {
	return Id{
		Network:         d.Network,
		ContractAddress: d.ContractAddress,
	}
}

// MarketplaceInstantiateMsg of the open marketplace contract.
type MarketplaceInstantiateMsg struct {
	Admin         domain.Address `json:"admin"`
	Denom         string         `json:"denom"`
	FeePercentage uint64         `json:"fee_percentage"`
}

type Repo interface {
	Upsert(ctx bCtx.Ctx, d *Deployment) error
	FindLatest(ctx bCtx.Ctx, network string, contractType ContractType) (*Deployment, error)
	FindAll(ctx bCtx.Ctx, network string) ([]Deployment, error)
}

type MarketplaceParams struct {
	// Wasm is uploaded unless CodeId points at stored code
	Wasm          []byte `validate:"required_without=CodeId"`
	CodeId        domain.CodeId
	Label         string         `validate:"required"`
	Admin         domain.Address `validate:"omitempty,bech32"`
	FeePercentage uint64         `validate:"lte=100"`
}

type Cw721Params struct {
	Wasm   []byte `validate:"required_without=CodeId"`
	CodeId domain.CodeId
	Label  string `validate:"required"`
	Name   string `validate:"required"`
	Symbol string `validate:"required"`
	// Minter defaults to the deployer
	Minter domain.Address `validate:"omitempty,bech32"`
}

type UseCase interface {
	DeployMarketplace(ctx bCtx.Ctx, params MarketplaceParams) (*Deployment, error)
	DeployCw721(ctx bCtx.Ctx, params Cw721Params) (*Deployment, error)
	Latest(ctx bCtx.Ctx, contractType ContractType) (*Deployment, error)
}
