package transport

import (
	"context"
	"encoding/json"
	"time"
)

// --------------------------------------------------------------------------
// Call types
// --------------------------------------------------------------------------

// Request is one logical call as submitted by a caller, independent of
// wire framing. The payload is opaque to the transport layer
type Request struct {
	// Verb is the operation verb (GET, POST, ...)
	Verb string
	// Target is the server-side path the call is addressed to
	Target string
	// Payload is the optional call body
	Payload json.RawMessage
	// Timeout overrides the configured default call timeout when > 0
	Timeout time.Duration
}

// Response is the settled outcome of a successful logical call
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// ITransport is the uniform contract both physical channels implement.
// A call either returns a Response (wire status 200-299) or an error from
// the taxonomy in rpc/common
type ITransport interface {
	// Send issues one logical call and blocks until it is settled
	// (response, failure, or timeout)
	Send(ctx context.Context, req Request) (*Response, error)
	// Close idempotently releases all resources and settles every
	// outstanding call
	Close() error
}

// IPersistentTransport is the additional surface of the persistent channel
type IPersistentTransport interface {
	ITransport

	// Connect establishes the persistent channel. Concurrent callers of
	// an in-flight attempt share its outcome
	Connect(ctx context.Context) error
	// IsConnected reports whether the channel is currently open
	IsConnected() bool
}
