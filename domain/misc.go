package domain

import (
	"fmt"
	"strings"
)

// NativeDenom is the base unit denom of the chain's native currency
const NativeDenom = "uxion"

type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return strings.EqualFold(string(a), string(b))
}

// Short renders xion1abcdefgh...stuvwxyz; addresses shorter than 2*n are returned as is.
func (a Address) Short(n int) string {
	s := string(a)
	if len(s) <= n*2 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:n], s[len(s)-n:])
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type TxHash string

type CodeId uint64

// Coin is a native fund attached to an execute call
type Coin struct {
	Denom  string `json:"denom" bson:"denom"`
	Amount string `json:"amount" bson:"amount"`
}

// MarketplaceVariant selects one of the configured marketplace contracts
type MarketplaceVariant string

const (
	MarketplaceOpen         MarketplaceVariant = "open"
	MarketplaceSingle       MarketplaceVariant = "single"
	MarketplacePermissioned MarketplaceVariant = "permissioned"
)

type Table string

const (
	TableDeployments    Table = "deployments"
	TableListingRecords Table = "listing_records"
)
