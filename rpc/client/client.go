package client

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/wirecall/wirecall/rpc/transport"
)

// Client is a thin typed surface over a transport for remote procedure
// calls and property reads/writes. It does not interpret payload
// semantics; arguments and results pass through as JSON
type Client struct {
	transport transport.ITransport
}

// New creates a client on top of either channel. The transport remains
// owned by the caller and must be closed by the caller
func New(t transport.ITransport) *Client {
	return &Client{transport: t}
}

// --------------------------------------------------------------------------
// Call surface
// --------------------------------------------------------------------------

// Call invokes the named remote procedure with the given arguments and
// returns the raw result body
func (c *Client) Call(ctx context.Context, method string, args any) (json.RawMessage, error) {
	payload, err := marshalArgs(args)
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, "POST", path.Join("/call", method), payload, 0)
}

// CallWithTimeout is Call with a per-call timeout overriding the
// transport's configured default
func (c *Client) CallWithTimeout(ctx context.Context, method string, args any, timeout time.Duration) (json.RawMessage, error) {
	payload, err := marshalArgs(args)
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, "POST", path.Join("/call", method), payload, timeout)
}

// GetProperty reads the remote property at the given path
func (c *Client) GetProperty(ctx context.Context, propPath string) (json.RawMessage, error) {
	return c.invoke(ctx, "GET", path.Join("/prop", propPath), nil, 0)
}

// SetProperty writes the remote property at the given path
func (c *Client) SetProperty(ctx context.Context, propPath string, value any) error {
	payload, err := marshalArgs(value)
	if err != nil {
		return err
	}
	_, err = c.invoke(ctx, "PUT", path.Join("/prop", propPath), payload, 0)
	return err
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// invoke is the single funnel for all client calls onto the transport
func (c *Client) invoke(ctx context.Context, verb, target string, payload json.RawMessage, timeout time.Duration) (json.RawMessage, error) {
	resp, err := c.transport.Send(ctx, transport.Request{
		Verb:    verb,
		Target:  target,
		Payload: payload,
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// marshalArgs serializes call arguments, passing raw JSON through
// untouched
func marshalArgs(args any) (json.RawMessage, error) {
	switch v := args.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(args)
	}
}
