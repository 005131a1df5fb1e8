// Package codec provides serialization for the wire envelopes exchanged on
// the persistent channel.
//
// The package defines the ICodec interface and ships a JSON implementation,
// which is the wire default. The codec covers both directions of both frame
// types so that test doubles can act as the remote end of the channel.
//
// The codec operates on envelopes only: call payloads are carried as opaque
// raw bytes and are never interpreted by this layer.
package codec
