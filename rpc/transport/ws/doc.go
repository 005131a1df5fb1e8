// Package ws provides the WebSocket implementation of the persistent
// channel. WebSocket messages map one-to-one onto wire frames, and the
// heartbeat uses WebSocket ping control frames.
package ws
