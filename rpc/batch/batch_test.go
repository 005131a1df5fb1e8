package batch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
)

// stubTransport records the outgoing request and returns a canned
// response body
type stubTransport struct {
	lastReq transport.Request
	body    []byte
	err     error
}

func (s *stubTransport) Send(_ context.Context, req transport.Request) (*transport.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &transport.Response{StatusCode: 200, Body: s.body}, nil
}

func (s *stubTransport) Close() error { return nil }

func marshalResponse(t *testing.T, entries []common.BatchEntry) []byte {
	t.Helper()
	data, err := json.Marshal(&common.BatchResponse{Responses: entries})
	require.NoError(t, err)
	return data
}

func TestSequentialIDsFollowInsertionOrder(t *testing.T) {
	stub := &stubTransport{body: marshalResponse(t, nil)}
	b := New(stub)

	assert.Equal(t, uint64(0), b.Add("GET", "/prop/a", nil))
	assert.Equal(t, uint64(1), b.Add("POST", "/call/b", json.RawMessage(`{}`)))
	assert.Equal(t, uint64(2), b.Add("PUT", "/prop/c", json.RawMessage(`1`)))
	assert.Equal(t, 3, b.Len())

	_, err := b.Execute(context.Background())
	require.NoError(t, err)

	// The outgoing request list preserves insertion order
	var sent common.BatchRequest
	require.NoError(t, json.Unmarshal(stub.lastReq.Payload, &sent))
	require.Len(t, sent.Requests, 3)
	for i, item := range sent.Requests {
		assert.Equal(t, uint64(i), item.SeqID)
	}
	assert.Equal(t, "/prop/a", sent.Requests[0].URL)
	assert.Equal(t, "/call/b", sent.Requests[1].URL)
	assert.Equal(t, "/prop/c", sent.Requests[2].URL)
}

func TestPartialResponseYieldsDefaultResult(t *testing.T) {
	stub := &stubTransport{body: marshalResponse(t, []common.BatchEntry{
		{SeqID: 1, StatusCode: 200, Body: json.RawMessage(`"found"`)},
	})}

	b := New(stub)
	b.Add("GET", "/prop/a", nil)
	b.Add("GET", "/prop/b", nil)

	results, err := b.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// The unanswered sub-call carries the default result
	assert.Equal(t, uint64(0), results[0].SeqID)
	assert.Equal(t, 0, results[0].StatusCode)
	assert.Nil(t, results[0].Body)

	assert.Equal(t, uint64(1), results[1].SeqID)
	assert.Equal(t, 200, results[1].StatusCode)
	assert.Equal(t, `"found"`, string(results[1].Body))
}

func TestCorrelationIgnoresResponseOrder(t *testing.T) {
	stub := &stubTransport{body: marshalResponse(t, []common.BatchEntry{
		{SeqID: 2, StatusCode: 500, Body: json.RawMessage(`"c"`)},
		{SeqID: 0, StatusCode: 200, Body: json.RawMessage(`"a"`)},
		{SeqID: 1, StatusCode: 201, Body: json.RawMessage(`"b"`)},
	})}

	b := New(stub)
	b.Add("GET", "/prop/a", nil)
	b.Add("GET", "/prop/b", nil)
	b.Add("GET", "/prop/c", nil)

	results, err := b.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 200, results[0].StatusCode)
	assert.Equal(t, 201, results[1].StatusCode)
	assert.Equal(t, 500, results[2].StatusCode)
}

func TestEmptyBatchSkipsTheWire(t *testing.T) {
	stub := &stubTransport{err: errors.New("must not be called")}

	results, err := New(stub).Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTransportErrorPropagates(t *testing.T) {
	stub := &stubTransport{err: common.ErrDisconnected}

	b := New(stub)
	b.Add("GET", "/prop/a", nil)

	_, err := b.Execute(context.Background())
	require.ErrorIs(t, err, common.ErrDisconnected)
}

func TestCustomTarget(t *testing.T) {
	stub := &stubTransport{body: marshalResponse(t, nil)}

	b := NewWithTarget(stub, "/bulk")
	b.Add("GET", "/prop/a", nil)

	_, err := b.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/bulk", stub.lastReq.Target)
	assert.Equal(t, "POST", stub.lastReq.Verb)
}
