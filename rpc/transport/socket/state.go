package socket

// channelState is the lifecycle state of the persistent channel. Exactly
// one instance exists per transport; it is mutated only by the connection
// manager in response to lifecycle events
type channelState int32

const (
	stateIdle channelState = iota
	stateConnecting
	stateOpen
	stateClosing
)

// String returns a string representation of the channel state
func (s channelState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateConnecting:
		return "connecting"
	case stateOpen:
		return "open"
	case stateClosing:
		return "closing"
	default:
		return "unknown"
	}
}
