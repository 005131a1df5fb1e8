// Package transport provides network communication abstractions for the
// wirecall client with pluggable implementations.
//
// Two interchangeable channels implement the ITransport contract:
//
//   - socket: the persistent, message-framed bidirectional channel with
//     connection lifecycle management, identifier-based response
//     correlation, heartbeat, and reconnect backoff (see socket and ws)
//
//   - http: the stateless request/response channel, one independent
//     exchange per call (see http)
//
// Callers interact with either channel through Send/Close; the persistent
// channel additionally exposes Connect and IsConnected.
package transport
