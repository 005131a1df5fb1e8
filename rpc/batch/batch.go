package batch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
)

// DefaultTarget is the server-side path batch round trips are addressed to
const DefaultTarget = "/batch"

// Result is the reconstructed outcome of one sub-call. A sub-call the
// server did not answer carries status 0 and no body; a partially
// fulfilled batch is a valid, reportable outcome, not a protocol failure
type Result struct {
	SeqID      uint64
	StatusCode int
	Body       json.RawMessage
}

// Batch packs several logical calls into one physical round trip on
// either channel. Sub-calls receive sequential ids starting at 0 in the
// order they are added; that order is preserved in the outgoing request
// list. The sequential id space is local to the batch and distinct from
// the transport-wide identifier space
type Batch struct {
	transport transport.ITransport
	target    string
	items     []common.BatchItem
}

// New creates an empty batch that will be sent over the given transport
// to the default batch target
func New(t transport.ITransport) *Batch {
	return &Batch{transport: t, target: DefaultTarget}
}

// NewWithTarget creates an empty batch addressed to a custom target
func NewWithTarget(t transport.ITransport, target string) *Batch {
	return &Batch{transport: t, target: target}
}

// Add appends one sub-call and returns its sequential id
func (b *Batch) Add(verb, target string, payload json.RawMessage) uint64 {
	seqID := uint64(len(b.items))
	b.items = append(b.items, common.BatchItem{
		SeqID: seqID,
		URL:   target,
		Verb:  verb,
		Body:  payload,
	})
	return seqID
}

// Len returns the number of sub-calls added so far
func (b *Batch) Len() int {
	return len(b.items)
}

// Execute sends the batch as one logical call and reassembles the
// per-sub-call results from the server's combined response. Correlation
// is strictly by sequential id, never by position: the server's response
// order is not assumed. The returned slice has one Result per sub-call,
// in insertion order
func (b *Batch) Execute(ctx context.Context) ([]Result, error) {
	if len(b.items) == 0 {
		return []Result{}, nil
	}

	body, err := json.Marshal(&common.BatchRequest{Requests: b.items})
	if err != nil {
		return nil, err
	}

	resp, err := b.transport.Send(ctx, transport.Request{
		Verb:    "POST",
		Target:  b.target,
		Payload: body,
	})
	if err != nil {
		return nil, err
	}

	var combined common.BatchResponse
	if err := json.Unmarshal(resp.Body, &combined); err != nil {
		return nil, fmt.Errorf("malformed batch response: %w", err)
	}

	// Index the response entries by sequential id
	bySeqID := make(map[uint64]common.BatchEntry, len(combined.Responses))
	for _, entry := range combined.Responses {
		bySeqID[entry.SeqID] = entry
	}

	// Match every sub-call; missing entries yield the default result
	results := make([]Result, len(b.items))
	for i, item := range b.items {
		results[i] = Result{SeqID: item.SeqID}
		if entry, ok := bySeqID[item.SeqID]; ok {
			results[i].StatusCode = entry.StatusCode
			results[i].Body = entry.Body
		}
	}
	return results, nil
}
