package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Error taxonomy
// --------------------------------------------------------------------------

// Sentinel errors returned by the client transports. All transport errors
// wrap one of these, so callers can classify outcomes with errors.Is
var (
	// ErrConnectTimeout means a connection attempt exceeded the configured
	// connect timeout
	ErrConnectTimeout = errors.New("connect timed out")

	// ErrConnectFailed means a connection attempt failed before the
	// connect timeout elapsed
	ErrConnectFailed = errors.New("connect failed")

	// ErrDisconnected means the channel was lost (or never established)
	// while the call was pending or being submitted
	ErrDisconnected = errors.New("disconnected")

	// ErrCallTimeout means a call received no response within its timeout
	ErrCallTimeout = errors.New("call timed out")

	// ErrQueueFull means the outbound buffer was at capacity when the
	// call was submitted
	ErrQueueFull = errors.New("outbound buffer capacity exceeded")

	// ErrDisposed means the transport was closed before or while the
	// call was pending
	ErrDisposed = errors.New("transport disposed")
)

// RemoteError is a non-success response from the server. The status code
// follows HTTP conventions: anything outside 200-299 settles as a
// RemoteError carrying the response body as detail
type RemoteError struct {
	StatusCode int
	Details    []byte
}

func (e *RemoteError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("remote failure: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote failure: status %d: %s", e.StatusCode, e.Details)
}

// IsSuccessStatus reports whether a wire status code settles a call
// successfully
func IsSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}
