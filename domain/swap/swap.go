package swap

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/amount"
	"github.com/x-xyz/xionmarket/domain"
)

type Type string

const (
	TypeSale  Type = "Sale"
	TypeOffer Type = "Offer"
)

// ParseType reads sale/offer case-insensitively; "all" and "" return nil.
func ParseType(s string) (*Type, error) {
	switch s {
	case "", "all", "All", "ALL":
		return nil, nil
	case "sale", "Sale", "SALE":
		t := TypeSale
		return &t, nil
	case "offer", "Offer", "OFFER":
		t := TypeOffer
		return &t, nil
	}
	return nil, xerrors.Errorf("swap type %q: %w", s, domain.ErrInvalidInput)
}

// Swap is a listing held by a marketplace contract.
type Swap struct {
	Id           string          `json:"id"`
	Creator      domain.Address  `json:"creator"`
	NftContract  domain.Address  `json:"nft_contract"`
	PaymentToken *domain.Address `json:"payment_token,omitempty"`
	TokenId      domain.TokenId  `json:"token_id"`
	Expires      ExpirationJSON  `json:"expires"`
	Price        string          `json:"price"`
	SwapType     Type            `json:"swap_type"`
}

func (s *Swap) IsSale() bool {
	return s.SwapType == TypeSale
}

// PaysNative is true when the listing is settled in the native denom.
func (s *Swap) PaysNative() bool {
	return s.PaymentToken == nil || s.PaymentToken.IsEmpty()
}

// Funds to attach when settling the listing: the price in native denom, or
// nothing when a cw20 payment token is used.
func (s *Swap) Funds() []domain.Coin {
	if !s.PaysNative() {
		return []domain.Coin{}
	}
	return []domain.Coin{{Denom: domain.NativeDenom, Amount: s.Price}}
}

func (s *Swap) PriceValue() (decimal.Decimal, error) {
	return amount.Parse(s.Price)
}

func (s *Swap) DisplayPrice() string {
	return amount.MustDisplay(s.Price)
}

// ListResponse is returned by every paginated listing query.
type ListResponse struct {
	Swaps []Swap `json:"swaps"`
}

// Config of a marketplace contract.
type Config struct {
	Admin domain.Address `json:"admin"`
	Denom string         `json:"denom"`
	Fees  uint64         `json:"fees"`
}

// SortByPrice orders swaps by ascending numeric price, keeping the server order for ties.
// Unparsable prices go last.
func SortByPrice(swaps []Swap) {
	sort.SliceStable(swaps, func(i, j int) bool {
		a, errA := swaps[i].PriceValue()
		b, errB := swaps[j].PriceValue()
		if errA != nil || errB != nil {
			return errA == nil && errB != nil
		}
		return a.LessThan(b)
	})
}

// PriceRange is inclusive; nil bounds are open.
type PriceRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

func (r PriceRange) IsOpen() bool {
	return r.Min == nil && r.Max == nil
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	if r.Min != nil && price.LessThan(*r.Min) {
		return false
	}
	if r.Max != nil && price.GreaterThan(*r.Max) {
		return false
	}
	return true
}

// FilterByPrice keeps the swaps whose price lies in r.
func FilterByPrice(swaps []Swap, r PriceRange) []Swap {
	res := make([]Swap, 0, len(swaps))
	for _, s := range swaps {
		p, err := s.PriceValue()
		if err != nil || !r.Contains(p) {
			continue
		}
		res = append(res, s)
	}
	return res
}

// PriceStats summarises the prices of a result page, in base units.
type PriceStats struct {
	Count int
	Min   decimal.Decimal
	Max   decimal.Decimal
	Avg   decimal.Decimal
}

// Stats returns nil for an empty page.
func Stats(swaps []Swap) *PriceStats {
	var stats *PriceStats
	sum := decimal.Zero
	for _, s := range swaps {
		p, err := s.PriceValue()
		if err != nil {
			continue
		}
		if stats == nil {
			stats = &PriceStats{Min: p, Max: p}
		}
		stats.Count++
		sum = sum.Add(p)
		if p.LessThan(stats.Min) {
			stats.Min = p
		}
		if p.GreaterThan(stats.Max) {
			stats.Max = p
		}
	}
	if stats != nil {
		stats.Avg = sum.Div(decimal.NewFromInt(int64(stats.Count))).Floor()
	}
	return stats
}
