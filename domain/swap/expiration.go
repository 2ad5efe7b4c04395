package swap

import (
	"encoding/json"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/domain"
)

// Expiration is one of AtHeight, AtTime or Never.
type Expiration interface {
	// IsExpired reports whether the listing is over at the given block height and time.
	IsExpired(height uint64, now time.Time) bool
	String() string
	expiration()
}

// AtHeight expires once the chain reaches the block height.
type AtHeight uint64

// AtTime expires at the timestamp, in nanoseconds since epoch.
type AtTime uint64

// Never does not expire.
type Never struct{}

func (AtHeight) expiration() {}
func (AtTime) expiration()   {}
func (Never) expiration()    {}

func (e AtHeight) IsExpired(height uint64, _ time.Time) bool {
	return height >= uint64(e)
}

func (e AtTime) IsExpired(_ uint64, now time.Time) bool {
	return uint64(now.UnixNano()) >= uint64(e)
}

func (Never) IsExpired(uint64, time.Time) bool {
	return false
}

func (e AtHeight) String() string {
	return "at height " + strconv.FormatUint(uint64(e), 10)
}

func (e AtTime) String() string {
	return "at " + e.Time().UTC().Format(time.RFC3339)
}

func (Never) String() string {
	return "never"
}

// Time converts the nanosecond timestamp.
func (e AtTime) Time() time.Time {
	return time.Unix(0, int64(e))
}

// AtUnix builds an AtTime from seconds since epoch.
func AtUnix(seconds int64) AtTime {
	return AtTime(uint64(seconds) * uint64(time.Second))
}

// AfterHours expires n hours after now, truncated to the second.
func AfterHours(now time.Time, n int) AtTime {
	return AtUnix(now.Unix() + int64(n)*3600)
}

// AfterBlocks expires n blocks after the current chain height.
func AfterBlocks(ctx bCtx.Ctx, gw domain.Gateway, n uint64) (AtHeight, error) {
	height, err := gw.Height(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("gateway.Height failed")
		return 0, err
	}
	return AtHeight(height + n), nil
}

type atHeightJSON struct {
	AtHeight uint64 `json:"at_height"`
}

type atTimeJSON struct {
	AtTime string `json:"at_time"`
}

type neverJSON struct {
	Never struct{} `json:"never"`
}

func (e AtHeight) MarshalJSON() ([]byte, error) {
	return json.Marshal(atHeightJSON{uint64(e)})
}

func (e AtTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(atTimeJSON{strconv.FormatUint(uint64(e), 10)})
}

func (Never) MarshalJSON() ([]byte, error) {
	return json.Marshal(neverJSON{})
}

// ExpirationJSON carries an Expiration through encoding/json.
type ExpirationJSON struct {
	Expiration
}

func (e ExpirationJSON) MarshalJSON() ([]byte, error) {
	if e.Expiration == nil {
		return []byte("null"), nil
	}
	return json.Marshal(e.Expiration)
}

func (e *ExpirationJSON) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.Expiration = nil
		return nil
	}
	exp, err := DecodeExpiration(data)
	if err != nil {
		return err
	}
	e.Expiration = exp
	return nil
}

// DecodeExpiration accepts exactly one of at_height, at_time or never.
func DecodeExpiration(data []byte) (Expiration, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, xerrors.Errorf("expiration: %w", err)
	}
	if len(raw) != 1 {
		return nil, xerrors.Errorf("expiration needs exactly one variant, got %d: %w", len(raw), domain.ErrInvalidInput)
	}

	for k, v := range raw {
		switch k {
		case "at_height":
			var h uint64
			if err := json.Unmarshal(v, &h); err != nil {
				return nil, xerrors.Errorf("at_height: %w", err)
			}
			return AtHeight(h), nil
		case "at_time":
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, xerrors.Errorf("at_time: %w", err)
			}
			ns, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, xerrors.Errorf("at_time %q: %w", s, domain.ErrInvalidInput)
			}
			return AtTime(ns), nil
		case "never":
			return Never{}, nil
		default:
			return nil, xerrors.Errorf("unknown expiration %q: %w", k, domain.ErrInvalidInput)
		}
	}
	return nil, domain.ErrInvalidInput
}
