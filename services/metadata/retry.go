package metadata

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	// DefaultRetryAttempts is the number of additional attempts after the
	// first failure.
	DefaultRetryAttempts = 3
	// DefaultRetryBaseDelay is multiplied by the attempt number for linear
	// backoff: 500ms, 1000ms, 1500ms.
	DefaultRetryBaseDelay = 500 * time.Millisecond
)

// withRetry runs one outbound call with the transient-failure retry
// policy. Non-transient failures (4xx, validation) abort immediately and
// come back unchanged; a transient failure that exhausts the budget comes
// back wrapped in ErrRetriesExhausted.
func (c *Client) withRetry(ctx context.Context, label string, fn func() error) error {
	err := retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(uint(c.retryAttempts)+1),
		retry.RetryIf(IsTransient),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return time.Duration(n+1) * c.retryBaseDelay
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[tmdb] retry attempt %d for %s: %v", n+1, label, err)
		}),
	)
	if err != nil && IsTransient(err) {
		return fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
	}
	return err
}
