package swap

import (
	"github.com/x-xyz/xionmarket/domain"
)

// ExecuteMsg is the closed set of marketplace transactions.
type ExecuteMsg interface {
	domain.WasmMsg
	executeMsg()
}

// QueryMsg is the closed set of marketplace queries.
type QueryMsg interface {
	domain.WasmMsg
	queryMsg()
}

type CreateMsg struct {
	Id           string          `json:"id"`
	Cw721        domain.Address  `json:"cw721"`
	PaymentToken *domain.Address `json:"payment_token,omitempty"`
	TokenId      domain.TokenId  `json:"token_id"`
	Expires      Expiration      `json:"expires"`
	Price        string          `json:"price"`
	SwapType     Type            `json:"swap_type"`
}

type FinishMsg struct {
	Id string `json:"id"`
}

type FinishForMsg struct {
	Id        string         `json:"id"`
	Recipient domain.Address `json:"recipient"`
}

type CancelMsg struct {
	Id string `json:"id"`
}

// UpdateMsg always carries both the new expiration and the new price.
type UpdateMsg struct {
	Id      string     `json:"id"`
	Expires Expiration `json:"expires"`
	Price   string     `json:"price"`
}

type WithdrawMsg struct {
	Amount       string          `json:"amount"`
	Denom        string          `json:"denom"`
	PaymentToken *domain.Address `json:"payment_token,omitempty"`
}

func (CreateMsg) Tag() string    { return "create" }
func (FinishMsg) Tag() string    { return "finish" }
func (FinishForMsg) Tag() string { return "finish_for" }
func (CancelMsg) Tag() string    { return "cancel" }
func (UpdateMsg) Tag() string    { return "update" }
func (WithdrawMsg) Tag() string  { return "withdraw" }

func (CreateMsg) executeMsg()    {}
func (FinishMsg) executeMsg()    {}
func (FinishForMsg) executeMsg() {}
func (CancelMsg) executeMsg()    {}
func (UpdateMsg) executeMsg()    {}
func (WithdrawMsg) executeMsg()  {}

type DetailsQuery struct {
	Id string `json:"id"`
}

type GetListingsQuery struct {
	Page  uint32 `json:"page"`
	Limit uint32 `json:"limit"`
}

type SwapsOfQuery struct {
	Address  domain.Address  `json:"address"`
	SwapType *Type           `json:"swap_type,omitempty"`
	Cw721    *domain.Address `json:"cw721,omitempty"`
	Page     uint32          `json:"page"`
	Limit    uint32          `json:"limit"`
}

type SwapsByPriceQuery struct {
	Min      *string         `json:"min,omitempty"`
	Max      *string         `json:"max,omitempty"`
	SwapType *Type           `json:"swap_type,omitempty"`
	Cw721    *domain.Address `json:"cw721,omitempty"`
	Page     uint32          `json:"page"`
	Limit    uint32          `json:"limit"`
}

type SwapsByDenomQuery struct {
	PaymentToken *domain.Address `json:"payment_token,omitempty"`
	SwapType     *Type           `json:"swap_type,omitempty"`
	Cw721        *domain.Address `json:"cw721,omitempty"`
	Page         uint32          `json:"page"`
	Limit        uint32          `json:"limit"`
}

type ConfigQuery struct{}

func (DetailsQuery) Tag() string      { return "details" }
func (GetListingsQuery) Tag() string  { return "get_listings" }
func (SwapsOfQuery) Tag() string      { return "swaps_of" }
func (SwapsByPriceQuery) Tag() string { return "swaps_by_price" }
func (SwapsByDenomQuery) Tag() string { return "swaps_by_denom" }
func (ConfigQuery) Tag() string       { return "config" }

func (DetailsQuery) queryMsg()      {}
func (GetListingsQuery) queryMsg()  {}
func (SwapsOfQuery) queryMsg()      {}
func (SwapsByPriceQuery) queryMsg() {}
func (SwapsByDenomQuery) queryMsg() {}
func (ConfigQuery) queryMsg()       {}
