package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// Disposition controls what happens to calls submitted while the
// persistent channel is not open
type Disposition string

const (
	// DispositionQueue buffers calls up to BufferCapacity and flushes
	// them in submission order once a connection is established
	DispositionQueue Disposition = "queue"
	// DispositionReject fails calls immediately with ErrDisconnected
	DispositionReject Disposition = "reject"
)

// Default values applied by WithDefaults for zero-valued fields
const (
	DefaultConnectTimeout        = 10 * time.Second
	DefaultCallTimeout           = 10 * time.Second
	DefaultHeartbeatInterval     = 30 * time.Second
	DefaultReconnectInitialDelay = 250 * time.Millisecond
	DefaultReconnectMaxDelay     = 5 * time.Second
	DefaultReconnectFactor       = 2.0
	DefaultBufferCapacity        = 64
)

// ClientConfig holds all configuration parameters for a client transport
type ClientConfig struct {
	// Endpoint is the server address (ws:// or wss:// for the socket
	// transport, http:// or https:// for the stateless transport)
	Endpoint string

	// ConnectTimeout bounds a single connection attempt
	ConnectTimeout time.Duration
	// CallTimeout is the default per-call timeout, overridable per call
	CallTimeout time.Duration
	// HeartbeatInterval is the liveness ping period while connected
	HeartbeatInterval time.Duration

	// Reconnect behaviour
	AutoReconnect         bool
	ReconnectInitialDelay time.Duration
	ReconnectMaxDelay     time.Duration
	ReconnectFactor       float64

	// Disposition of calls submitted while disconnected
	Disposition Disposition
	// BufferCapacity bounds the outbound buffer under DispositionQueue
	BufferCapacity int

	// Logging configuration
	LogLevel string
}

// WithDefaults returns a copy of the config with zero values replaced
// by their defaults
func (c ClientConfig) WithDefaults() ClientConfig {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if c.ReconnectInitialDelay <= 0 {
		c.ReconnectInitialDelay = DefaultReconnectInitialDelay
	}
	if c.ReconnectMaxDelay <= 0 {
		c.ReconnectMaxDelay = DefaultReconnectMaxDelay
	}
	if c.ReconnectFactor < 1 {
		c.ReconnectFactor = DefaultReconnectFactor
	}
	if c.Disposition == "" {
		c.Disposition = DispositionQueue
	}
	if c.BufferCapacity <= 0 {
		c.BufferCapacity = DefaultBufferCapacity
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

// Validate checks the configuration for values that cannot be defaulted away
func (c ClientConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("no endpoint provided")
	}
	if c.Disposition != "" && c.Disposition != DispositionQueue && c.Disposition != DispositionReject {
		return fmt.Errorf("invalid disposition %q: must be %q or %q", c.Disposition, DispositionQueue, DispositionReject)
	}
	return nil
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General client settings
	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint)
	addField("Connect Timeout", c.ConnectTimeout.String())
	addField("Call Timeout", c.CallTimeout.String())
	addField("Heartbeat Interval", c.HeartbeatInterval.String())

	// Reconnect settings
	addSection("Reconnect")
	addField("Auto Reconnect", strconv.FormatBool(c.AutoReconnect))
	addField("Initial Delay", c.ReconnectInitialDelay.String())
	addField("Max Delay", c.ReconnectMaxDelay.String())
	addField("Backoff Factor", strconv.FormatFloat(c.ReconnectFactor, 'g', -1, 64))

	// Disconnected disposition
	addSection("Offline Disposition")
	addField("Disposition", string(c.Disposition))
	addField("Buffer Capacity", strconv.Itoa(c.BufferCapacity))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
