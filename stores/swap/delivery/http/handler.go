package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/delivery"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
	"github.com/x-xyz/xionmarket/middleware"
)

// Resolver turns the :marketplace path param (open, single, permissioned or an address) into a contract address.
type Resolver func(variant string) (domain.Address, error)

type handler struct {
	swap    swap.UseCase
	records swap.RecordRepo
	resolve Resolver
}

// New registers the read-only listing routes. records may be nil; mws wrap every route, e.g. middleware.CacheHttp.
func New(e *echo.Echo, uc swap.UseCase, records swap.RecordRepo, resolve Resolver, prefix string, mws ...echo.MiddlewareFunc) {
	h := &handler{
		swap:    uc,
		records: records,
		resolve: resolve,
	}

	gs := e.Group("/marketplaces/:marketplace", mws...)
	gs.GET("/config", h.getConfig)
	gs.GET("/listings", h.searchListings)
	gs.GET("/listings/:id", h.getListing)
	gs.GET("/listings/:id/records", h.getRecords)
	gs.GET("/accounts/:address/listings", h.getAccountListings, middleware.IsValidAddress("address", prefix))
}

func (h *handler) marketplace(c echo.Context) (domain.Address, error) {
	return h.resolve(c.Param("marketplace"))
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	marketplace, err := h.marketplace(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.swap.Config(ctx, marketplace)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	marketplace, err := h.marketplace(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.swap.Details(ctx, marketplace, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type searchParams struct {
	Min          string `query:"min"`
	Max          string `query:"max"`
	Type         string `query:"type"`
	Cw721        string `query:"cw721"`
	Owner        string `query:"owner"`
	PaymentToken string `query:"paymentToken"`
	Page         uint32 `query:"page"`
	Limit        uint32 `query:"limit"`
	Sort         string `query:"sort"`
}

func (p searchParams) toSearch(marketplace domain.Address) (swap.SearchParams, error) {
	typ, err := swap.ParseType(p.Type)
	if err != nil {
		return swap.SearchParams{}, err
	}
	return swap.SearchParams{
		Marketplace:  marketplace,
		Min:          p.Min,
		Max:          p.Max,
		Type:         typ,
		Cw721:        domain.Address(p.Cw721),
		Owner:        domain.Address(p.Owner),
		PaymentToken: domain.Address(p.PaymentToken),
		Page:         p.Page,
		Limit:        p.Limit,
		SortByPrice:  p.Sort == "price",
	}, nil
}

func (h *handler) searchListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	marketplace, err := h.marketplace(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := searchParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	params, err := p.toSearch(marketplace)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.swap.Search(ctx, params)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getAccountListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	marketplace, err := h.marketplace(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Page  uint32 `query:"page"`
		Limit uint32 `query:"limit"`
	}
	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.swap.Search(ctx, swap.SearchParams{
		Marketplace: marketplace,
		Owner:       domain.Address(c.Param("address")),
		Page:        p.Page,
		Limit:       p.Limit,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getRecords(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if h.records == nil {
		return delivery.MakeJsonResp(c, http.StatusNotImplemented, domain.ErrNotImplemented)
	}

	marketplace, err := h.marketplace(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Offset int64 `query:"offset"`
		Limit  int64 `query:"limit"`
	}
	p := params{Limit: 50}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.records.FindAll(ctx, marketplace, c.Param("id"), swap.WithPagination(p.Offset, p.Limit))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
