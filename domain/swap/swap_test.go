package swap

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/xionmarket/domain"
)

type swapSuite struct {
	suite.Suite
}

func TestSwapSuite(t *testing.T) {
	suite.Run(t, new(swapSuite))
}

func priced(id, price string) Swap {
	return Swap{Id: id, Price: price, SwapType: TypeSale, Expires: ExpirationJSON{Never{}}}
}

func (s *swapSuite) TestDecode() {
	raw := `{
		"id": "listing-1",
		"creator": "xion1seller",
		"nft_contract": "xion1nft",
		"payment_token": null,
		"token_id": "1",
		"expires": {"at_time": "1700000000000000000"},
		"price": "15000000",
		"swap_type": "Sale"
	}`
	var sw Swap
	s.NoError(json.Unmarshal([]byte(raw), &sw))
	s.Equal("listing-1", sw.Id)
	s.Nil(sw.PaymentToken)
	s.Equal(AtUnix(1700000000), sw.Expires.Expiration)
	s.True(sw.IsSale())
	s.Equal("15.000000 XION", sw.DisplayPrice())
}

func (s *swapSuite) TestFunds() {
	sw := priced("a", "15000000")
	s.Equal([]domain.Coin{{Denom: "uxion", Amount: "15000000"}}, sw.Funds())

	cw20 := domain.Address("xion1cw20")
	sw.PaymentToken = &cw20
	s.Empty(sw.Funds())
	s.NotNil(sw.Funds())

	empty := domain.Address("")
	sw.PaymentToken = &empty
	s.Len(sw.Funds(), 1)
}

func (s *swapSuite) TestParseType() {
	t, err := ParseType("sale")
	s.NoError(err)
	s.Equal(TypeSale, *t)

	t, err = ParseType("Offer")
	s.NoError(err)
	s.Equal(TypeOffer, *t)

	t, err = ParseType("all")
	s.NoError(err)
	s.Nil(t)

	_, err = ParseType("auction")
	s.Error(err)
}

func (s *swapSuite) TestSortByPrice() {
	swaps := []Swap{priced("c", "25000000"), priced("a", "1000000"), priced("x", "bad"), priced("b", "7000000"), priced("b2", "7000000")}
	SortByPrice(swaps)

	ids := []string{}
	for _, sw := range swaps {
		ids = append(ids, sw.Id)
	}
	s.Equal([]string{"a", "b", "b2", "c", "x"}, ids)
}

func (s *swapSuite) TestFilterByPrice() {
	min := decimal.NewFromInt(5000000)
	max := decimal.NewFromInt(20000000)
	swaps := []Swap{priced("a", "1000000"), priced("b", "7000000"), priced("c", "15000000"), priced("d", "25000000")}

	res := FilterByPrice(swaps, PriceRange{Min: &min, Max: &max})
	s.Len(res, 2)
	s.Equal("7000000", res[0].Price)
	s.Equal("15000000", res[1].Price)

	s.Len(FilterByPrice(swaps, PriceRange{}), 4)
	s.True(PriceRange{}.IsOpen())
	s.True(PriceRange{Min: &min}.Contains(min), "bounds are inclusive")
}

func (s *swapSuite) TestStats() {
	s.Nil(Stats(nil))

	stats := Stats([]Swap{priced("a", "1000000"), priced("b", "2000000"), priced("c", "4000000")})
	s.Equal(3, stats.Count)
	s.True(decimal.NewFromInt(1000000).Equal(stats.Min))
	s.True(decimal.NewFromInt(4000000).Equal(stats.Max))
	s.True(decimal.NewFromInt(2333333).Equal(stats.Avg))
}
