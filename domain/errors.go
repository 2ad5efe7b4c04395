package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is a local precondition failure, raised before any network call
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAmount is raised by the amount codec
	ErrInvalidAmount = fmt.Errorf("invalid amount: %w", ErrInvalidInput)
	// ErrInvalidAddress is raised for malformed bech32 addresses
	ErrInvalidAddress = fmt.Errorf("invalid address: %w", ErrInvalidInput)
	// ErrSameContract is raised when the nft contract is the marketplace itself
	ErrSameContract = fmt.Errorf("nft contract must differ from marketplace: %w", ErrInvalidInput)

	// ErrNetwork is a transient transport failure; only reads are retried on it
	ErrNetwork = errors.New("network error")

	// ErrContract is the parent of every error reported by a contract
	ErrContract          = errors.New("contract error")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAlreadyExists     = errors.New("already exists")
	ErrExpired           = errors.New("expired")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWrongType         = errors.New("wrong swap type")

	ErrNotImplemented = errors.New("not implemented")
)

// contractKinds is matched in order against the raw ledger error text.
var contractKinds = []struct {
	substr string
	kind   error
}{
	{"insufficient funds", ErrInsufficientFunds},
	{"token_id already claimed", ErrAlreadyExists},
	{"AlreadyExists", ErrAlreadyExists},
	{"already exists", ErrAlreadyExists},
	{"Unauthorized", ErrUnauthorized},
	{"unauthorized", ErrUnauthorized},
	{"Expired", ErrExpired},
	{"not found", ErrNotFound},
	{"NotFound", ErrNotFound},
	{"Invalid", ErrInvalidInput},
}

// ChainError is an error reported by the ledger or its transport.
type ChainError struct {
	// Kind is one of the sentinel errors above
	Kind error
	Raw  string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Raw)
}

// Is makes errors.Is match the kind and, for contract failures, ErrContract.
func (e *ChainError) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	return target == ErrContract && e.Kind != ErrNetwork
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(raw string) error {
	return &ChainError{Kind: ErrNetwork, Raw: raw}
}

// ClassifyContractError maps a raw contract error message onto the taxonomy.
func ClassifyContractError(raw string) error {
	for _, k := range contractKinds {
		if strings.Contains(raw, k.substr) {
			return &ChainError{Kind: k.kind, Raw: raw}
		}
	}
	return &ChainError{Kind: ErrContract, Raw: raw}
}

// IsRetriable reports whether a read may be repeated after err.
func IsRetriable(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// Kind returns the most specific sentinel err matches.
func Kind(err error) error {
	var ce *ChainError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	for _, k := range []error{
		ErrInvalidInput,
		ErrWrongType,
		ErrNetwork,
		ErrNotFound,
		ErrUnauthorized,
		ErrAlreadyExists,
		ErrExpired,
		ErrInsufficientFunds,
		ErrContract,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// KindName is used for reports and metric tags.
func KindName(err error) string {
	switch Kind(err) {
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrNetwork:
		return "NetworkError"
	case ErrNotFound:
		return "NotFound"
	case ErrUnauthorized:
		return "Unauthorized"
	case ErrAlreadyExists:
		return "AlreadyExists"
	case ErrExpired:
		return "Expired"
	case ErrInsufficientFunds:
		return "InsufficientFunds"
	case ErrWrongType:
		return "WrongType"
	case ErrContract:
		return "ContractError"
	}
	return "Unknown"
}

// Step names the part of a workflow that failed.
type Step string

const (
	StepValidate Step = "validate"
	StepApprove  Step = "approve"
	StepCreate   Step = "create"
	StepQuery    Step = "query"
	StepSettle   Step = "settle"
	StepCancel   Step = "cancel"
	StepUpdate   Step = "update"
	StepWithdraw Step = "withdraw"
	StepMint     Step = "mint"
	StepTransfer Step = "transfer"
	StepUpload   Step = "upload"
	StepInstall  Step = "instantiate"
	StepSave     Step = "save"
)

// StepError tells which step of a workflow failed and what the caller can do about it.
type StepError struct {
	Step     Step
	Guidance string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError attaches the step and the guidance matching the error kind.
// guidance maps a kind sentinel to the hint shown to the user; it may be nil.
func NewStepError(step Step, err error, guidance map[error]string) *StepError {
	return &StepError{
		Step:     step,
		Guidance: guidance[Kind(err)],
		Err:      err,
	}
}
