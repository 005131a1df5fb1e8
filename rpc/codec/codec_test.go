package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirecall/wirecall/rpc/common"
)

func TestJSONRequestRoundTrip(t *testing.T) {
	c := NewJSONCodec()
	frame := common.NewRequestFrame(42, "POST", "/call/move", []byte(`{"x":1,"y":2}`))

	data, err := c.EncodeRequest(frame)
	require.NoError(t, err)

	var decoded common.RequestFrame
	require.NoError(t, c.DecodeRequest(data, &decoded))
	assert.Equal(t, uint64(42), decoded.ID)
	assert.Equal(t, "POST", decoded.Verb)
	assert.Equal(t, "/call/move", decoded.URL)
	assert.JSONEq(t, `{"x":1,"y":2}`, string(decoded.Body))
}

func TestJSONResponseWithoutBody(t *testing.T) {
	c := NewJSONCodec()

	data, err := c.EncodeResponse(common.NewResponseFrame(7, 204, nil))
	require.NoError(t, err)

	// An absent body is omitted from the wire form entirely
	assert.NotContains(t, string(data), "body")

	var decoded common.ResponseFrame
	require.NoError(t, c.DecodeResponse(data, &decoded))
	assert.Equal(t, uint64(7), decoded.ID)
	assert.Equal(t, 204, decoded.StatusCode)
	assert.Nil(t, decoded.Body)
}

func TestBodyPassesThroughUninterpreted(t *testing.T) {
	c := NewJSONCodec()
	body := json.RawMessage(`{"nested":{"deep":[1,2,3]}}`)

	data, err := c.EncodeRequest(common.NewRequestFrame(1, "PUT", "/prop/a", body))
	require.NoError(t, err)

	var decoded common.RequestFrame
	require.NoError(t, c.DecodeRequest(data, &decoded))
	assert.JSONEq(t, string(body), string(decoded.Body))
}
