package usecase

import (
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/amount"
	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
)

var errConflictingFilters = xerrors.Errorf("owner, payment token and price range cannot be combined: %w", domain.ErrInvalidInput)

func parseBound(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	base, err := amount.ToBaseUnits(s)
	if err != nil {
		return nil, err
	}
	d, err := amount.Parse(base)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func priceRange(params swap.SearchParams) (swap.PriceRange, error) {
	min, err := parseBound(params.Min)
	if err != nil {
		return swap.PriceRange{}, err
	}
	max, err := parseBound(params.Max)
	if err != nil {
		return swap.PriceRange{}, err
	}
	if min != nil && max != nil && min.GreaterThan(*max) {
		return swap.PriceRange{}, xerrors.Errorf("min %s is above max %s: %w", min, max, domain.ErrInvalidAmount)
	}
	return swap.PriceRange{Min: min, Max: max}, nil
}

// shapeOf picks the one query a search maps to. Owner, payment token and
// price range each select their own query and cannot be combined.
func shapeOf(params swap.SearchParams, r swap.PriceRange) (swap.SearchShape, error) {
	selected := 0
	shape := swap.ShapeAll
	if !params.Owner.IsEmpty() {
		selected++
		shape = swap.ShapeByOwner
	}
	if !params.PaymentToken.IsEmpty() {
		selected++
		shape = swap.ShapeByDenom
	}
	if !r.IsOpen() {
		selected++
		shape = swap.ShapeByPrice
	}
	if selected > 1 {
		return "", errConflictingFilters
	}
	if shape == swap.ShapeAll && (params.Type != nil || !params.Cw721.IsEmpty()) {
		// type and collection filters are served by the price query with open bounds
		shape = swap.ShapeByPrice
	}
	return shape, nil
}

func optAddress(a domain.Address) *domain.Address {
	if a.IsEmpty() {
		return nil
	}
	return &a
}

func optDecimal(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func queryOf(shape swap.SearchShape, params swap.SearchParams, r swap.PriceRange, limit uint32) swap.QueryMsg {
	switch shape {
	case swap.ShapeByOwner:
		return swap.SwapsOfQuery{
			Address:  params.Owner,
			SwapType: params.Type,
			Cw721:    optAddress(params.Cw721),
			Page:     params.Page,
			Limit:    limit,
		}
	case swap.ShapeByDenom:
		return swap.SwapsByDenomQuery{
			PaymentToken: optAddress(params.PaymentToken),
			SwapType:     params.Type,
			Cw721:        optAddress(params.Cw721),
			Page:         params.Page,
			Limit:        limit,
		}
	case swap.ShapeByPrice:
		return swap.SwapsByPriceQuery{
			Min:      optDecimal(r.Min),
			Max:      optDecimal(r.Max),
			SwapType: params.Type,
			Cw721:    optAddress(params.Cw721),
			Page:     params.Page,
			Limit:    limit,
		}
	}
	return swap.GetListingsQuery{Page: params.Page, Limit: limit}
}

func (im *impl) Search(ctx bCtx.Ctx, params swap.SearchParams) (*swap.SearchResult, error) {
	if err := im.validateParams(ctx, params, nil); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit == 0 {
		limit = swap.DefaultPageLimit
	}

	r, err := priceRange(params)
	if err != nil {
		return nil, domain.NewStepError(domain.StepValidate, err, nil)
	}
	shape, err := shapeOf(params, r)
	if err != nil {
		return nil, domain.NewStepError(domain.StepValidate, err, nil)
	}

	resp := swap.ListResponse{}
	if err := im.query(ctx, params.Marketplace, queryOf(shape, params, r, limit), &resp); err != nil {
		return nil, domain.NewStepError(domain.StepQuery, err, nil)
	}

	swaps := resp.Swaps
	if swaps == nil {
		swaps = []swap.Swap{}
	}
	if !r.IsOpen() {
		swaps = swap.FilterByPrice(swaps, r)
		if dropped := len(resp.Swaps) - len(swaps); dropped > 0 {
			ctx.WithFields(log.Fields{"dropped": dropped, "shape": shape}).Debug("listings outside price range")
		}
	}
	if params.SortByPrice {
		swap.SortByPrice(swaps)
	}

	res := &swap.SearchResult{
		Shape: shape,
		Swaps: swaps,
		Page:  params.Page,
		Limit: limit,
		Range: r,
		// a full page only hints at more results
		MayHaveMore: len(resp.Swaps) == int(limit),
		Stats:       swap.Stats(swaps),
	}
	if res.MayHaveMore {
		res.NextPage = params.Page + 1
	}
	return res, nil
}
