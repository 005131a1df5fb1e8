package socket

import "time"

// runHeartbeat sends a liveness probe at the configured interval while the
// channel stays open. Failed pings are tolerated silently: detecting the
// dead peer and recovering is the job of the connection's own close/error
// signalling, which the read loop observes. The goroutine is stopped
// immediately on leaving the open state
func (t *clientTransport) runHeartbeat(conn IFramedConn, gen uint64, stop chan struct{}) {
	ticker := time.NewTicker(t.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.writeMu.Lock()
			err := conn.Ping()
			t.writeMu.Unlock()
			if err != nil {
				t.logger.Debug().Err(err).Msg("heartbeat ping failed")
			}

			// Surviving a full interval counts as connection stability
			t.markStable(gen)
		}
	}
}

// startHeartbeatLocked launches the heartbeat goroutine for the current
// connection. Caller must hold t.mu
func (t *clientTransport) startHeartbeatLocked(conn IFramedConn, gen uint64) {
	stop := make(chan struct{})
	t.hbStop = stop
	go t.runHeartbeat(conn, gen, stop)
}

// stopHeartbeatLocked stops a running heartbeat goroutine, if any. Caller
// must hold t.mu
func (t *clientTransport) stopHeartbeatLocked() {
	if t.hbStop != nil {
		close(t.hbStop)
		t.hbStop = nil
	}
}
