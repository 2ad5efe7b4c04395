package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
)

func newTestRenderer(asJson bool) (*renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := newRenderer(buf, asJson)
	r.c.Disable()
	return r, buf
}

func TestFailure(t *testing.T) {
	req := require.New(t)
	r, buf := newTestRenderer(false)

	err := domain.NewStepError(domain.StepSettle, domain.ClassifyContractError("insufficient funds: 1uxion < 2500000uxion"), map[error]string{
		domain.ErrInsufficientFunds: "Make sure you have enough XION. Required: 2.500000 XION",
	})
	r.failure(err)

	out := buf.String()
	req.Contains(out, "Error InsufficientFunds (step settle)")
	req.Contains(out, "hint: Make sure you have enough XION. Required: 2.500000 XION")
}

func TestFailureWithoutStep(t *testing.T) {
	req := require.New(t)
	r, buf := newTestRenderer(false)

	r.failure(xerrors.Errorf("marketplace %q: %w", "nope", domain.ErrInvalidAddress))
	req.Contains(buf.String(), "Error InvalidInput (step -)")
	req.NotContains(buf.String(), "hint:")
}

func TestListing(t *testing.T) {
	req := require.New(t)
	r, buf := newTestRenderer(false)

	r.listing(&swap.Swap{
		Id:          "listing-1",
		Creator:     "xion1zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3r5dqyy",
		NftContract: "xion1ehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxspy5c04",
		TokenId:     "7",
		Expires:     swap.ExpirationJSON{Expiration: swap.Never{}},
		Price:       "2500000",
		SwapType:    swap.TypeSale,
	})
	out := buf.String()
	req.Contains(out, "Listing listing-1")
	req.Contains(out, "2.500000 XION")
	req.Contains(out, "never")
	req.NotContains(out, "paid with")
}

func TestSearchJson(t *testing.T) {
	req := require.New(t)
	r, buf := newTestRenderer(true)

	r.search(&swap.SearchResult{Shape: swap.ShapeAll, Swaps: []swap.Swap{}, Limit: 20})
	req.Contains(buf.String(), `"Shape": "all"`)
}

func TestSearchMayHaveMore(t *testing.T) {
	req := require.New(t)
	r, buf := newTestRenderer(false)

	r.search(&swap.SearchResult{
		Shape:       swap.ShapeAll,
		Swaps:       []swap.Swap{{Id: "a", Price: "1000000", SwapType: swap.TypeSale}},
		Page:        3,
		MayHaveMore: true,
		NextPage:    4,
	})
	req.Contains(buf.String(), "1 listings (all, page 3)")
	req.Contains(buf.String(), "try --page 4")
}

func TestRunUsage(t *testing.T) {
	req := require.New(t)
	buf := &bytes.Buffer{}

	req.Equal(exitUsage, run(nil, buf))
	req.Contains(buf.String(), "buy-for")

	buf.Reset()
	req.Equal(exitUsage, run([]string{"auction"}, buf))
	req.Contains(buf.String(), `unknown command "auction"`)
}
