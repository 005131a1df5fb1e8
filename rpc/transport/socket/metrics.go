package socket

import "github.com/VictoriaMetrics/metrics"

// Counters exposed via the VictoriaMetrics default registry
var (
	metricConnects          = metrics.NewCounter(`wirecall_socket_connects_total`)
	metricConnectFailures   = metrics.NewCounter(`wirecall_socket_connect_failures_total`)
	metricReconnectAttempts = metrics.NewCounter(`wirecall_socket_reconnect_attempts_total`)
	metricDisconnects       = metrics.NewCounter(`wirecall_socket_disconnects_total`)
	metricCalls             = metrics.NewCounter(`wirecall_socket_calls_total`)
	metricCallTimeouts      = metrics.NewCounter(`wirecall_socket_call_timeouts_total`)
	metricQueueRejects      = metrics.NewCounter(`wirecall_socket_queue_rejects_total`)
)
