package codec

import (
	"encoding/json"

	"github.com/wirecall/wirecall/rpc/common"
)

// NewJSONCodec creates a new codec that en/decodes envelopes as JSON.
// JSON is the wire default for both channels
func NewJSONCodec() ICodec {
	return &jsonCodec{}
}

type jsonCodec struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see ICodec)
// --------------------------------------------------------------------------

func (c *jsonCodec) EncodeRequest(frame *common.RequestFrame) ([]byte, error) {
	return json.Marshal(frame)
}

func (c *jsonCodec) DecodeRequest(data []byte, frame *common.RequestFrame) error {
	return json.Unmarshal(data, frame)
}

func (c *jsonCodec) EncodeResponse(frame *common.ResponseFrame) ([]byte, error) {
	return json.Marshal(frame)
}

func (c *jsonCodec) DecodeResponse(data []byte, frame *common.ResponseFrame) error {
	return json.Unmarshal(data, frame)
}
