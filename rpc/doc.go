// Package rpc provides the client-side transport layer for issuing remote
// procedure calls and property reads/writes to a single remote server.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the RPC
//     layer, including the wire envelopes, configuration structures,
//     the error taxonomy, and logging.
//
//   - transport: The uniform call contract with two interchangeable
//     channel implementations: socket (persistent, message-framed,
//     with lifecycle management and reconnect backoff, carried over
//     WebSocket by the ws package) and http (stateless, one exchange
//     per call).
//
//   - codec: Envelope serialization with a JSON default.
//
//   - batch: Packing several logical calls into one physical round trip
//     and reassembling per-call results by sequential id.
//
//   - client: A thin typed surface (Call, GetProperty, SetProperty)
//     over either channel.
package rpc
