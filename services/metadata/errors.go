package metadata

import (
	"errors"
	"fmt"
)

// ErrRetriesExhausted tags a transient upstream failure that survived the
// whole retry budget. The underlying error stays reachable via errors.As.
var ErrRetriesExhausted = errors.New("upstream retries exhausted")

// UpstreamError is a failed call to the metadata source. StatusCode 0
// means the request never got an HTTP response (connection reset, timeout).
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("tmdb request failed: %v", e.Err)
	}
	return fmt.Sprintf("tmdb request failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Transient reports whether the failure is worth retrying: network-level
// errors and 5xx responses are, 4xx responses are not.
func (e *UpstreamError) Transient() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// IsTransient reports whether err is a retryable upstream failure.
func IsTransient(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Transient()
}

// ClientErrorStatus returns the upstream 4xx status and body when err
// carries one, so handlers can forward it verbatim.
func ClientErrorStatus(err error) (int, string, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.StatusCode >= 400 && ue.StatusCode < 500 {
		return ue.StatusCode, ue.Body, true
	}
	return 0, "", false
}
