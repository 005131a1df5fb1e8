package codec

import "github.com/wirecall/wirecall/rpc/common"

// ICodec converts wire envelopes to and from their byte representation.
// Both directions of both frame types are covered so that test fakes can
// act as the remote end of the channel
type ICodec interface {
	// EncodeRequest serializes an outbound envelope
	EncodeRequest(frame *common.RequestFrame) ([]byte, error)
	// DecodeRequest deserializes an outbound envelope
	DecodeRequest(data []byte, frame *common.RequestFrame) error
	// EncodeResponse serializes an inbound envelope
	EncodeResponse(frame *common.ResponseFrame) ([]byte, error)
	// DecodeResponse deserializes an inbound envelope
	DecodeResponse(data []byte, frame *common.ResponseFrame) error
}
