package swap

import (
	"time"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/domain"
)

const (
	// DefaultDurationHours is how long a listing lives when no duration is given
	DefaultDurationHours = 168
	// DefaultPageLimit is the page size used when none is given
	DefaultPageLimit = 20
	// DefaultConfirmDelay is the pause before a purchase is submitted
	DefaultConfirmDelay = 5 * time.Second
)

type CreateParams struct {
	Marketplace domain.Address `validate:"required,bech32"`
	NftContract domain.Address `validate:"required,bech32"`
	TokenId     domain.TokenId `validate:"required"`
	// Price is free-form, e.g. "10", "10 XION" or "10000000 uxion"
	Price string `validate:"required"`
	// DurationHours is used when Expires is nil, 0 means DefaultDurationHours
	DurationHours int `validate:"gte=0"`
	// ExpireBlocks, when set and Expires is nil, expires that many blocks after the current height
	ExpireBlocks uint64
	Expires      Expiration     `validate:"-"`
	SwapType     Type           `validate:"oneof=Sale Offer"`
	PaymentToken domain.Address `validate:"omitempty,bech32"`
	// Id is generated when empty
	Id string
	// SkipApprove skips the cw721 approval that precedes a Sale
	SkipApprove bool
}

type CreateResult struct {
	Id      string
	Expires Expiration
	Price   string
	// Approve is nil when no approval was sent or when it failed
	Approve    *domain.TxReport
	ApproveErr error
	Create     *domain.TxReport
}

type BuyParams struct {
	Marketplace domain.Address `validate:"required,bech32"`
	Id          string         `validate:"required"`
	// Recipient is required by BuyFor and ignored by Buy
	Recipient domain.Address `validate:"omitempty,bech32"`
	// SkipConfirm drops the confirmation delay
	SkipConfirm bool
	// OnConfirm is called with the listing and the funds before the delay starts
	OnConfirm func(listing *Swap, funds []domain.Coin, delay time.Duration) `validate:"-"`
}

type BuyResult struct {
	Listing *Swap
	Funds   []domain.Coin
	Report  *domain.TxReport
}

type UpdateParams struct {
	Marketplace   domain.Address `validate:"required,bech32"`
	Id            string         `validate:"required"`
	Price         string         `validate:"required"`
	DurationHours int            `validate:"gte=0"`
	Expires       Expiration     `validate:"-"`
}

type WithdrawParams struct {
	Marketplace  domain.Address `validate:"required,bech32"`
	Amount       string         `validate:"required"`
	PaymentToken domain.Address `validate:"omitempty,bech32"`
}

type SearchShape string

const (
	ShapeAll     SearchShape = "all"
	ShapeByPrice SearchShape = "by_price"
	ShapeByOwner SearchShape = "by_owner"
	ShapeByDenom SearchShape = "by_denom"
)

type SearchParams struct {
	Marketplace domain.Address `validate:"required,bech32"`
	// Min and Max are free-form amounts, both optional
	Min   string
	Max   string
	Type  *Type          `validate:"omitempty,oneof=Sale Offer"`
	Cw721 domain.Address `validate:"omitempty,bech32"`
	Owner domain.Address `validate:"omitempty,bech32"`
	// PaymentToken searches listings paid with a cw20 token
	PaymentToken domain.Address `validate:"omitempty,bech32"`
	Page         uint32
	// Limit 0 means DefaultPageLimit
	Limit       uint32 `validate:"lte=100"`
	SortByPrice bool
}

type SearchResult struct {
	Shape SearchShape
	Swaps []Swap
	Page  uint32
	Limit uint32
	Range PriceRange
	// MayHaveMore is set when the page came back full; the next page may still be empty
	MayHaveMore bool
	NextPage    uint32
	Stats       *PriceStats
}

type UseCase interface {
	Create(ctx bCtx.Ctx, params CreateParams) (*CreateResult, error)
	Buy(ctx bCtx.Ctx, params BuyParams) (*BuyResult, error)
	BuyFor(ctx bCtx.Ctx, params BuyParams) (*BuyResult, error)
	Cancel(ctx bCtx.Ctx, marketplace domain.Address, id string) (*domain.TxReport, error)
	Update(ctx bCtx.Ctx, params UpdateParams) (*domain.TxReport, error)
	Withdraw(ctx bCtx.Ctx, params WithdrawParams) (*domain.TxReport, error)

	Details(ctx bCtx.Ctx, marketplace domain.Address, id string) (*Swap, error)
	Config(ctx bCtx.Ctx, marketplace domain.Address) (*Config, error)
	Search(ctx bCtx.Ctx, params SearchParams) (*SearchResult, error)
}
