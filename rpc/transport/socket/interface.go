package socket

import "context"

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IFramedConn is one established message-framed connection. Frame
// boundaries are preserved by the underlying medium; the socket core never
// deals with partial reads or writes
type IFramedConn interface {
	// WriteFrame sends one complete frame
	WriteFrame(data []byte) error

	// ReadFrame blocks until the next complete frame arrives. It returns
	// an error when the connection is lost or closed
	ReadFrame() ([]byte, error)

	// Ping sends a lightweight liveness probe. A failed ping is tolerated
	// by the caller; loss detection is the connection's own close/error
	// signalling
	Ping() error

	// Close tears the connection down
	Close() error
}

// IConnector defines the interface for medium-specific connection
// operations (e.g. WebSocket)
type IConnector interface {
	// Connect establishes a single framed connection to the endpoint.
	// The context bounds the attempt
	Connect(ctx context.Context, endpoint string) (IFramedConn, error)

	// GetName returns the name of the transport medium (e.g. "ws")
	GetName() string
}
