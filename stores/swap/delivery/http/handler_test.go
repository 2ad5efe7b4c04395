package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/delivery"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/swap"
	swapMocks "github.com/x-xyz/xionmarket/domain/swap/mocks"
	"github.com/x-xyz/xionmarket/middleware"
)

const (
	marketplace = domain.Address("xion1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0sugmyf4")
	nft         = domain.Address("xion1ehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxspy5c04")
	seller      = domain.Address("xion1zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3r5dqyy")
)

type handlerSuite struct {
	suite.Suite
	e       *echo.Echo
	uc      *swapMocks.UseCase
	records *swapMocks.RecordRepo
}

func resolve(variant string) (domain.Address, error) {
	switch variant {
	case "open":
		return marketplace, nil
	case string(marketplace):
		return marketplace, nil
	}
	return "", xerrors.Errorf("marketplace %q: %w", variant, domain.ErrInvalidAddress)
}

func (s *handlerSuite) SetupTest() {
	s.uc = &swapMocks.UseCase{}
	s.records = &swapMocks.RecordRepo{}
	s.e = echo.New()
	s.e.Use(middleware.InitMiddleware(0).AddContext())
	New(s.e, s.uc, s.records, resolve, "xion")
}

func (s *handlerSuite) TearDownTest() {
	s.uc.AssertExpectations(s.T())
	s.records.AssertExpectations(s.T())
}

type resp struct {
	Data   json.RawMessage             `json:"data"`
	Status delivery.JsonResponseStatus `json:"status"`
}

func (s *handlerSuite) get(target string) (int, resp) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	r := resp{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &r))
	return rec.Code, r
}

func (s *handlerSuite) TestGetListing() {
	listing := &swap.Swap{
		Id:          "listing-1",
		Creator:     seller,
		NftContract: nft,
		TokenId:     "7",
		Expires:     swap.ExpirationJSON{Expiration: swap.AtTime(1735776000000000000)},
		Price:       "2500000",
		SwapType:    swap.TypeSale,
	}
	s.uc.On("Details", mock.Anything, marketplace, "listing-1").Return(listing, nil).Once()

	code, r := s.get("/marketplaces/open/listings/listing-1")
	s.Equal(http.StatusOK, code)
	s.Equal(delivery.JsonResponseStatusSuccess, r.Status)

	got := swap.Swap{}
	s.Require().NoError(json.Unmarshal(r.Data, &got))
	s.Equal(*listing, got)
}

func (s *handlerSuite) TestGetListingNotFound() {
	err := domain.NewStepError(domain.StepQuery, xerrors.Errorf("query details: %w", domain.ErrNotFound), map[error]string{
		domain.ErrNotFound: "Check the listing id",
	})
	s.uc.On("Details", mock.Anything, marketplace, "missing").Return(nil, err).Once()

	code, r := s.get("/marketplaces/open/listings/missing")
	s.Equal(http.StatusNotFound, code)
	s.Equal(delivery.JsonResponseStatusFail, r.Status)

	body := delivery.ErrorBody{}
	s.Require().NoError(json.Unmarshal(r.Data, &body))
	s.Equal("NotFound", body.Kind)
	s.Equal("query", body.Step)
	s.Equal("Check the listing id", body.Guidance)
}

func (s *handlerSuite) TestUnknownMarketplace() {
	code, r := s.get("/marketplaces/elsewhere/config")
	s.Equal(http.StatusBadRequest, code)

	body := delivery.ErrorBody{}
	s.Require().NoError(json.Unmarshal(r.Data, &body))
	s.Equal("InvalidInput", body.Kind)
}

func (s *handlerSuite) TestGetConfig() {
	cfg := &swap.Config{Admin: seller, Denom: "uxion", Fees: 2}
	s.uc.On("Config", mock.Anything, marketplace).Return(cfg, nil).Once()

	code, r := s.get("/marketplaces/" + string(marketplace) + "/config")
	s.Equal(http.StatusOK, code)

	got := swap.Config{}
	s.Require().NoError(json.Unmarshal(r.Data, &got))
	s.Equal(*cfg, got)
}

func (s *handlerSuite) TestSearchListings() {
	sale := swap.TypeSale
	want := swap.SearchParams{
		Marketplace: marketplace,
		Min:         "5",
		Max:         "20 XION",
		Type:        &sale,
		Cw721:       nft,
		Page:        2,
		Limit:       10,
		SortByPrice: true,
	}
	res := &swap.SearchResult{Shape: swap.ShapeByPrice, Page: 2, Limit: 10}
	s.uc.On("Search", mock.Anything, want).Return(res, nil).Once()

	code, _ := s.get("/marketplaces/open/listings?min=5&max=20%20XION&type=sale&cw721=" + string(nft) + "&page=2&limit=10&sort=price")
	s.Equal(http.StatusOK, code)
}

func (s *handlerSuite) TestSearchListingsInvalidType() {
	code, _ := s.get("/marketplaces/open/listings?type=auction")
	s.Equal(http.StatusBadRequest, code)
}

func (s *handlerSuite) TestSearchListingsNetworkError() {
	s.uc.On("Search", mock.Anything, mock.Anything).Return(nil, domain.NewNetworkError("503 service unavailable")).Once()

	code, _ := s.get("/marketplaces/open/listings")
	s.Equal(http.StatusBadGateway, code)
}

func (s *handlerSuite) TestAccountListings() {
	want := swap.SearchParams{
		Marketplace: marketplace,
		Owner:       seller,
		Limit:       5,
	}
	s.uc.On("Search", mock.Anything, want).Return(&swap.SearchResult{Shape: swap.ShapeByOwner}, nil).Once()

	code, _ := s.get("/marketplaces/open/accounts/" + string(seller) + "/listings?limit=5")
	s.Equal(http.StatusOK, code)
}

func (s *handlerSuite) TestAccountListingsInvalidAddress() {
	code, r := s.get("/marketplaces/open/accounts/osmo1qqqsyqcyq5rqwzqfpg9scrgwpugpzysntdz28t/listings")
	s.Equal(http.StatusBadRequest, code)
	s.Equal(delivery.JsonResponseStatusFail, r.Status)
}

func (s *handlerSuite) TestRecords() {
	records := []swap.Record{
		{Marketplace: marketplace, ListingId: "listing-1", Action: swap.ActionCreate, TxHash: "ABC", Height: 10},
	}
	s.records.On("FindAll", mock.Anything, marketplace, "listing-1", mock.Anything).Return(records, nil).Once()

	code, r := s.get("/marketplaces/open/listings/listing-1/records")
	s.Equal(http.StatusOK, code)

	got := []swap.Record{}
	s.Require().NoError(json.Unmarshal(r.Data, &got))
	s.Len(got, 1)
	s.Equal(swap.ActionCreate, got[0].Action)
}

func (s *handlerSuite) TestRecordsDisabled() {
	e := echo.New()
	e.Use(middleware.InitMiddleware(0).AddContext())
	New(e, s.uc, nil, resolve, "xion")

	req := httptest.NewRequest(http.MethodGet, "/marketplaces/open/listings/listing-1/records", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	s.Equal(http.StatusNotImplemented, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}
