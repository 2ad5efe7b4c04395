package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type errorsSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(errorsSuite))
}

func (s *errorsSuite) TestClassifyContractError() {
	tests := []struct {
		desc    string
		raw     string
		expKind error
		expName string
	}{
		{
			desc:    "listing missing",
			raw:     "query wasm contract failed: Generic error: swap not found",
			expKind: ErrNotFound,
			expName: "NotFound",
		},
		{
			desc:    "not the owner",
			raw:     "execute wasm contract failed: Unauthorized",
			expKind: ErrUnauthorized,
			expName: "Unauthorized",
		},
		{
			desc:    "duplicate id",
			raw:     "execute wasm contract failed: AlreadyExists",
			expKind: ErrAlreadyExists,
			expName: "AlreadyExists",
		},
		{
			desc:    "duplicate token",
			raw:     "token_id already claimed",
			expKind: ErrAlreadyExists,
			expName: "AlreadyExists",
		},
		{
			desc:    "expired listing",
			raw:     "execute wasm contract failed: Expired",
			expKind: ErrExpired,
			expName: "Expired",
		},
		{
			desc:    "not enough balance",
			raw:     "spendable balance 10uxion is smaller than 100uxion: insufficient funds",
			expKind: ErrInsufficientFunds,
			expName: "InsufficientFunds",
		},
		{
			desc:    "contract side validation",
			raw:     "Invalid input: human address too short",
			expKind: ErrInvalidInput,
			expName: "InvalidInput",
		},
		{
			desc:    "unknown contract failure",
			raw:     "out of gas",
			expKind: ErrContract,
			expName: "ContractError",
		},
	}

	for _, t := range tests {
		err := ClassifyContractError(t.raw)
		s.True(errors.Is(err, t.expKind), t.desc)
		s.True(errors.Is(err, ErrContract), t.desc)
		s.False(errors.Is(err, ErrNetwork), t.desc)
		s.False(IsRetriable(err), t.desc)
		s.Equal(t.expName, KindName(err), t.desc)
	}
}

func (s *errorsSuite) TestNetworkError() {
	err := xerrors.Errorf("gateway.Query failed: %w", NewNetworkError("connection refused"))
	s.True(errors.Is(err, ErrNetwork))
	s.False(errors.Is(err, ErrContract))
	s.True(IsRetriable(err))
	s.Equal("NetworkError", KindName(err))
}

func (s *errorsSuite) TestLocalKinds() {
	s.Equal("InvalidInput", KindName(ErrInvalidAmount))
	s.Equal("InvalidInput", KindName(ErrSameContract))
	s.Equal("WrongType", KindName(xerrors.Errorf("listing is an Offer: %w", ErrWrongType)))
	s.Equal("Expired", KindName(xerrors.Errorf("listing expired locally: %w", ErrExpired)))
	s.Equal("Unknown", KindName(errors.New("boom")))
}

func (s *errorsSuite) TestStepError() {
	guidance := map[error]string{
		ErrUnauthorized: "make sure you own the NFT",
	}
	err := NewStepError(StepCreate, ClassifyContractError("Unauthorized"), guidance)
	s.Equal(StepCreate, err.Step)
	s.Equal("make sure you own the NFT", err.Guidance)
	s.True(errors.Is(err, ErrUnauthorized))
	s.Contains(err.Error(), "create failed")

	err = NewStepError(StepSettle, ClassifyContractError("Expired"), guidance)
	s.Empty(err.Guidance)
	s.True(errors.Is(err, ErrExpired))

	var stepErr *StepError
	s.True(errors.As(xerrors.Errorf("buy: %w", err), &stepErr))
	s.Equal(StepSettle, stepErr.Step)
}
