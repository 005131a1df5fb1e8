// Package http provides the stateless request/response channel. Each call
// opens an independent HTTP exchange with its own timeout via context
// cancellation; there is no shared state across calls.
package http
