// Package batch turns a set of logical calls into one wire request and
// one wire response into per-call results.
//
// A Batch collects sub-calls with sequential ids starting at 0, sends them
// as a single logical call over any transport, and correlates the server's
// combined response back onto the sub-calls by sequential id. Sub-calls
// without a matching response entry resolve to a default result (status 0,
// no body) instead of failing the whole batch.
package batch
