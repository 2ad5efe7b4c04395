// Package provider holds the byte level stores behind cache.Service.
package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/xionmarket/base/ctx"
)

// ErrNotFound is returned by Get for a missing or expired key.
var ErrNotFound = errors.New("cache entry not found")

// Provider stores raw values under keys already namespaced by the caller.
type Provider interface {
	// Get returns the value and the ttl it has left, 0 when it never expires
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	// Set with a ttl of 0 keeps the value until it is evicted
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
