package cw721

import (
	"encoding/json"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
)

// ExecuteMsg is the closed set of cw721 transactions used here.
type ExecuteMsg interface {
	domain.WasmMsg
	executeMsg()
}

// QueryMsg is the closed set of cw721 queries used here.
type QueryMsg interface {
	domain.WasmMsg
	queryMsg()
}

// ApproveMsg lets spender transfer token_id until expires.
type ApproveMsg struct {
	Spender domain.Address  `json:"spender"`
	TokenId domain.TokenId  `json:"token_id"`
	Expires swap.Expiration `json:"expires,omitempty"`
}

type MintMsg struct {
	TokenId   domain.TokenId  `json:"token_id"`
	Owner     domain.Address  `json:"owner"`
	TokenUri  *string         `json:"token_uri,omitempty"`
	Extension json.RawMessage `json:"extension,omitempty"`
}

type TransferNftMsg struct {
	Recipient domain.Address `json:"recipient"`
	TokenId   domain.TokenId `json:"token_id"`
}

func (ApproveMsg) Tag() string     { return "approve" }
func (MintMsg) Tag() string        { return "mint" }
func (TransferNftMsg) Tag() string { return "transfer_nft" }

func (ApproveMsg) executeMsg()     {}
func (MintMsg) executeMsg()        {}
func (TransferNftMsg) executeMsg() {}

type OwnerOfQuery struct {
	TokenId        domain.TokenId `json:"token_id"`
	IncludeExpired bool           `json:"include_expired"`
}

type TokensQuery struct {
	Owner      domain.Address `json:"owner"`
	StartAfter *string        `json:"start_after,omitempty"`
	Limit      *uint32        `json:"limit,omitempty"`
}

type NumTokensQuery struct{}

func (OwnerOfQuery) Tag() string   { return "owner_of" }
func (TokensQuery) Tag() string    { return "tokens" }
func (NumTokensQuery) Tag() string { return "num_tokens" }

func (OwnerOfQuery) queryMsg()   {}
func (TokensQuery) queryMsg()    {}
func (NumTokensQuery) queryMsg() {}

type Approval struct {
	Spender domain.Address      `json:"spender"`
	Expires swap.ExpirationJSON `json:"expires"`
}

type OwnerOfResponse struct {
	Owner     domain.Address `json:"owner"`
	Approvals []Approval     `json:"approvals"`
}

// IsApproved reports whether spender holds an approval on the token.
func (r *OwnerOfResponse) IsApproved(spender domain.Address) bool {
	for _, a := range r.Approvals {
		if a.Spender.Equals(spender) {
			return true
		}
	}
	return false
}

type TokensResponse struct {
	Tokens []domain.TokenId `json:"tokens"`
}

type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

// InstantiateMsg of a cw721 base contract.
type InstantiateMsg struct {
	Name   string         `json:"name"`
	Symbol string         `json:"symbol"`
	Minter domain.Address `json:"minter"`
}

type MintParams struct {
	Contract domain.Address `validate:"required,bech32"`
	TokenId  domain.TokenId `validate:"required"`
	// Owner defaults to the signer address
	Owner     domain.Address `validate:"omitempty,bech32"`
	TokenUri  string
	Extension json.RawMessage
}

type TransferParams struct {
	Contract  domain.Address `validate:"required,bech32"`
	TokenId   domain.TokenId `validate:"required"`
	Recipient domain.Address `validate:"required,bech32"`
}

type TokensParams struct {
	Contract   domain.Address `validate:"required,bech32"`
	Owner      domain.Address `validate:"required,bech32"`
	StartAfter string
	Limit      uint32 `validate:"lte=100"`
}

type UseCase interface {
	Mint(ctx bCtx.Ctx, params MintParams) (*domain.TxReport, error)
	Transfer(ctx bCtx.Ctx, params TransferParams) (*domain.TxReport, error)
	OwnerOf(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (*OwnerOfResponse, error)
	Tokens(ctx bCtx.Ctx, params TokensParams) (*TokensResponse, error)
	NumTokens(ctx bCtx.Ctx, contract domain.Address) (uint64, error)
}
