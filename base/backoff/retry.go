package backoff

import (
	"context"
)

// Retriable reports whether a failed attempt may be repeated.
type Retriable func(error) bool

// Retry runs fn at most attempts+1 times, waiting on b between failures.
// It stops early when fn succeeds, when retriable rejects the error, or when ctx is done.
// The last error from fn is returned.
func Retry(ctx context.Context, b *Backoff, attempts int, retriable Retriable, fn func() error) error {
	b.Reset()
	for {
		err := fn()
		if err == nil {
			return nil
		}
		if b.Count() >= attempts || (retriable != nil && !retriable(err)) {
			return err
		}
		if werr := b.Backoff(ctx); werr != nil {
			return err
		}
	}
}
