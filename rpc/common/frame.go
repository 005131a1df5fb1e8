package common

import "encoding/json"

// --------------------------------------------------------------------------
// Wire envelope
// --------------------------------------------------------------------------

// RequestFrame is the outbound envelope on the persistent channel. The
// identifier correlates the server's response back to the pending call
type RequestFrame struct {
	ID   uint64          `json:"identifier"`
	URL  string          `json:"url"`
	Verb string          `json:"verb"`
	Body json.RawMessage `json:"body,omitempty"`
}

// ResponseFrame is the inbound envelope on the persistent channel. Status
// codes in the 200-299 range settle success, everything else settles a
// RemoteError with the body as detail
type ResponseFrame struct {
	ID         uint64          `json:"identifier"`
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// --------------------------------------------------------------------------
// Batch payloads
// --------------------------------------------------------------------------

// BatchItem is one sub-request inside a batch. SeqID is local to the
// batch and distinct from the transport-wide identifier space
type BatchItem struct {
	SeqID uint64          `json:"sequentialId"`
	URL   string          `json:"url"`
	Verb  string          `json:"verb"`
	Body  json.RawMessage `json:"body,omitempty"`
}

// BatchRequest is the combined wire payload for one batch round trip.
// Item order matches builder insertion order
type BatchRequest struct {
	Requests []BatchItem `json:"requests"`
}

// BatchEntry is one per-sub-request result in the server's combined
// response. Response order is not significant, correlation is by SeqID
type BatchEntry struct {
	SeqID      uint64          `json:"sequentialId"`
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// BatchResponse is the server's combined response to a BatchRequest
type BatchResponse struct {
	Responses []BatchEntry `json:"responses"`
}

// --------------------------------------------------------------------------
// Factory methods
// --------------------------------------------------------------------------

// NewRequestFrame creates an outbound envelope for a single call
func NewRequestFrame(id uint64, verb, url string, body []byte) *RequestFrame {
	return &RequestFrame{ID: id, URL: url, Verb: verb, Body: body}
}

// NewResponseFrame creates an inbound envelope (used by tests and fakes)
func NewResponseFrame(id uint64, statusCode int, body []byte) *ResponseFrame {
	return &ResponseFrame{ID: id, StatusCode: statusCode, Body: body}
}
