package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
)

// NewHTTPClientTransport creates a stateless client transport. Each call
// is one independent HTTP exchange; there is no connection state machine
// and failures never affect other concurrent calls
func NewHTTPClientTransport(config common.ClientConfig) (transport.ITransport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.WithDefaults()

	baseURL, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	return &httpClientTransport{
		baseURL: baseURL,
		config:  config,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     config.CallTimeout,
			},
		},
	}, nil
}

type httpClientTransport struct {
	baseURL *url.URL
	config  common.ClientConfig
	client  *http.Client
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.ITransport)
// --------------------------------------------------------------------------

func (t *httpClientTransport) Send(ctx context.Context, req transport.Request) (*transport.Response, error) {
	// Check if the transport is initialized
	if t.client == nil {
		return nil, common.ErrDisposed
	}

	// Per-call timeout via context cancellation
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = t.config.CallTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Resolve the call target against the base URL
	ref, err := url.Parse(req.Target)
	if err != nil {
		return nil, fmt.Errorf("invalid target %q: %w", req.Target, err)
	}
	requestURL := t.baseURL.ResolveReference(ref).String()

	// Create the request
	httpRequest, err := http.NewRequestWithContext(ctx, req.Verb, requestURL, bytes.NewReader(req.Payload))
	if err != nil {
		return nil, err
	}
	if len(req.Payload) > 0 {
		httpRequest.Header.Set("Content-Type", "application/json")
	}

	// Send the request
	httpResponse, err := t.client.Do(httpRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %v", common.ErrCallTimeout, timeout)
		}
		return nil, err
	}
	defer func() {
		_ = httpResponse.Body.Close()
	}()

	// Read the response body
	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, err
	}

	// Non-success status codes settle as remote failures
	if !common.IsSuccessStatus(httpResponse.StatusCode) {
		return nil, &common.RemoteError{
			StatusCode: httpResponse.StatusCode,
			Details:    body,
		}
	}

	return &transport.Response{
		StatusCode: httpResponse.StatusCode,
		Body:       body,
	}, nil
}

func (t *httpClientTransport) Close() error {
	// Close the client
	if t.client != nil {
		t.client.CloseIdleConnections()
	}

	// Reset the client; further calls fail with ErrDisposed
	t.client = nil

	return nil
}
