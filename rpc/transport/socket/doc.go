// Package socket implements the persistent-channel client transport: a
// long-lived, message-framed bidirectional connection carrying multiple
// logical calls multiplexed by identifier.
//
// The package is built from small single-purpose parts:
//
//   - clientTransport drives the channel lifecycle state machine
//     (idle, connecting, open, closing), owns the connection handle
//     exclusively, and funnels every frame write through itself
//
//   - pendingRegistry maps outstanding identifiers to their waiting
//     callers, enforces per-call timeouts, and guarantees one-shot
//     settlement for every call
//
//   - outboundBuffer holds calls submitted while disconnected, bounded
//     by a configurable capacity and flushed in submission order on
//     reconnect (under the queue disposition)
//
//   - reconnectBackoff produces the bounded exponential delay between
//     reconnect attempts, reset once a connection proves stable
//
//   - the heartbeat sends a periodic liveness probe while the channel
//     is open, independent of call traffic
//
// The transport medium is pluggable through the IConnector interface; the
// ws package provides the WebSocket implementation. Guarantees: at most
// one in-flight wire send per logical call, deterministic settlement or
// timeout for every submitted call, and identifiers never reused while an
// entry for them is live.
package socket
