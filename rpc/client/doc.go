// Package client provides a thin typed call surface on top of the
// transport layer: remote procedure calls (Call) and property reads and
// writes (GetProperty, SetProperty).
//
// The client works identically over both channels since it only depends
// on the uniform ITransport contract. Payloads are passed through as
// JSON and never interpreted.
package client
