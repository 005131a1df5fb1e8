// Package common provides core data structures and utilities shared across
// the wirecall client transports. It defines fundamental types, configuration
// structures, and wire envelope elements used by other packages.
//
// The package focuses on:
//   - Wire envelope definition for the persistent channel (request and
//     response frames correlated by identifier) and for batch round trips
//     (sub-requests and sub-results correlated by sequential id)
//   - The configuration structure for client transports, covering connect
//     and call timeouts, heartbeat, reconnect backoff, and the disposition
//     of calls submitted while disconnected
//   - The transport error taxonomy, distinguishing local timeouts from
//     remote rejections from connectivity loss
//   - A logger factory providing consistent formatting across components
//
// Key Components:
//
//   - RequestFrame / ResponseFrame: Envelopes for all traffic on the
//     persistent channel, multiplexed by a transport-wide identifier.
//
//   - BatchRequest / BatchResponse: Combined payloads packing several
//     logical calls into one physical round trip.
//
//   - ClientConfig: Configuration for client transports, controlling
//     connection parameters, timeouts, reconnect and buffering behaviour.
//
//   - RemoteError and the Err* sentinels: Every failed call settles with
//     an error wrapping exactly one of these, so callers can classify the
//     outcome with errors.Is.
package common
