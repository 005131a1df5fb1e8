package socket

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wirecall/wirecall/rpc/codec"
	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
)

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// connectAttempt is the shared outcome of one in-flight connection
// attempt. All concurrent Connect callers wait on the same attempt, so no
// duplicate dials happen
type connectAttempt struct {
	done chan struct{}
	err  error
}

// wait blocks until the attempt finishes or the caller's context is done
func (a *connectAttempt) wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// clientTransport implements the persistent-channel client transport
// independent of the specific framed medium (WebSocket, in-memory fakes)
type clientTransport struct {
	connector IConnector
	codec     codec.ICodec
	config    common.ClientConfig
	logger    zerolog.Logger

	// mu serializes every lifecycle event (connect result, channel loss,
	// timer fire, dispose, caller submission) against the channel state
	mu             sync.Mutex
	state          channelState
	conn           IFramedConn
	connGen        uint64 // increments per established connection, stale events are ignored
	attempt        *connectAttempt
	reconnectTimer *time.Timer
	stable         bool
	hbStop         chan struct{}

	// writeMu serializes frame writes; no frame is written concurrently
	// with another or during a connection swap
	writeMu sync.Mutex

	backoff  *reconnectBackoff
	registry *pendingRegistry
	buffer   *outboundBuffer
	nextID   atomic.Uint64 // instance-scoped, assigned at write time only
}

// -----------------------------------------------------------
// Transport Factory Method
// -----------------------------------------------------------

// NewClientTransport creates a persistent-channel client transport with
// the specified connector. The transport starts idle; the first Connect
// (or the first buffered call) establishes the channel
func NewClientTransport(config common.ClientConfig, connector IConnector, c codec.ICodec) (transport.IPersistentTransport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.WithDefaults()

	level, err := common.ParseLogLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}

	return &clientTransport{
		connector: connector,
		codec:     c,
		config:    config,
		state:     stateIdle,
		backoff:   newReconnectBackoff(config.ReconnectInitialDelay, config.ReconnectMaxDelay, config.ReconnectFactor),
		registry:  newPendingRegistry(),
		buffer:    newOutboundBuffer(config.BufferCapacity),
		logger: common.CreateLogger("transport/socket").Level(level).With().
			Str("transport_id", uuid.NewString()).
			Str("medium", connector.GetName()).
			Logger(),
	}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IPersistentTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	switch t.state {
	case stateClosing:
		t.mu.Unlock()
		return common.ErrDisposed
	case stateOpen:
		t.mu.Unlock()
		return nil
	case stateConnecting:
		att := t.attempt
		t.mu.Unlock()
		return att.wait(ctx)
	}

	// Idle: begin a fresh attempt
	att := &connectAttempt{done: make(chan struct{})}
	t.attempt = att
	t.state = stateConnecting
	t.cancelReconnectLocked()
	t.mu.Unlock()

	go t.runConnect(att)
	return att.wait(ctx)
}

func (t *clientTransport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == stateOpen
}

func (t *clientTransport) Send(ctx context.Context, req transport.Request) (*transport.Response, error) {
	metricCalls.Inc()

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = t.config.CallTimeout
	}

	done := make(chan outcome, 1)

	t.mu.Lock()
	switch t.state {
	case stateClosing:
		t.mu.Unlock()
		return nil, common.ErrDisposed

	case stateOpen:
		id := t.nextID.Add(1)
		t.registry.register(id, timeout, done)
		conn, gen := t.conn, t.connGen
		t.mu.Unlock()

		// A write failure is a channel loss; the loss handler settles
		// this entry along with every other pending call
		_ = t.writeRequest(conn, gen, id, req)

	default: // idle or connecting
		if t.config.Disposition == common.DispositionReject {
			t.mu.Unlock()
			return nil, common.ErrDisconnected
		}

		err := t.buffer.push(&bufferedCall{req: req, done: done})
		needConnect := err == nil && t.state == stateIdle && t.reconnectTimer == nil
		t.mu.Unlock()

		if err != nil {
			metricQueueRejects.Inc()
			return nil, err
		}
		if needConnect {
			go func() { _ = t.Connect(context.Background()) }()
		}
	}

	select {
	case out := <-done:
		return out.resp, out.err
	case <-ctx.Done():
		// No per-call cancellation on this channel: the registry slot
		// stays until settlement or timeout
		return nil, ctx.Err()
	}
}

func (t *clientTransport) Close() error {
	t.mu.Lock()
	if t.state == stateClosing {
		t.mu.Unlock()
		return nil
	}
	t.state = stateClosing
	t.cancelReconnectLocked()
	t.stopHeartbeatLocked()
	conn := t.conn
	t.conn = nil
	t.attempt = nil
	t.mu.Unlock()

	t.registry.rejectAll(common.ErrDisposed)
	t.buffer.rejectAll(common.ErrDisposed)
	if conn != nil {
		_ = conn.Close()
	}

	t.logger.Info().Msg("transport disposed")
	return nil
}

// --------------------------------------------------------------------------
// Connection lifecycle
// --------------------------------------------------------------------------

// runConnect performs one bounded connection attempt and reports the
// result to the state machine
func (t *clientTransport) runConnect(att *connectAttempt) {
	dialCtx, cancel := context.WithTimeout(context.Background(), t.config.ConnectTimeout)
	conn, err := t.connector.Connect(dialCtx, t.config.Endpoint)
	cancel()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %v: %v", common.ErrConnectTimeout, t.config.ConnectTimeout, err)
		} else {
			err = fmt.Errorf("%w: %v", common.ErrConnectFailed, err)
		}
		metricConnectFailures.Inc()
	}
	t.finishConnect(att, conn, err)
}

// finishConnect applies the attempt outcome to the state machine and
// settles all waiting Connect callers
func (t *clientTransport) finishConnect(att *connectAttempt, conn IFramedConn, err error) {
	t.mu.Lock()
	if t.state != stateConnecting || t.attempt != att {
		// Disposed while dialing
		t.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		att.err = common.ErrDisposed
		close(att.done)
		return
	}
	t.attempt = nil

	if err != nil {
		t.state = stateIdle
		t.scheduleReconnectLocked()
		t.mu.Unlock()

		t.logger.Warn().Err(err).Msg("connection attempt failed")
		att.err = err
		close(att.done)
		return
	}

	t.state = stateOpen
	t.conn = conn
	t.connGen++
	gen := t.connGen
	t.stable = false
	t.startHeartbeatLocked(conn, gen)
	t.mu.Unlock()

	metricConnects.Inc()
	t.logger.Info().Str("endpoint", t.config.Endpoint).Msg("connected")

	go t.readLoop(conn, gen)
	go t.flushBuffer(gen)

	att.err = nil
	close(att.done)
}

// handleConnLoss reacts to an unexpected closure of the open channel:
// back to idle, heartbeat stopped, every pending call rejected, reconnect
// scheduled per policy. Stale events from an older connection are ignored
func (t *clientTransport) handleConnLoss(gen uint64, cause error) {
	t.mu.Lock()
	if t.state != stateOpen || gen != t.connGen {
		t.mu.Unlock()
		return
	}
	t.state = stateIdle
	conn := t.conn
	t.conn = nil
	t.stopHeartbeatLocked()
	t.scheduleReconnectLocked()
	t.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	metricDisconnects.Inc()
	t.logger.Warn().Err(cause).Msg("connection lost")

	// Lost calls are not retried automatically, the caller decides
	t.registry.rejectAll(fmt.Errorf("%w: %v", common.ErrDisconnected, cause))
}

// scheduleReconnectLocked arms the reconnect timer with the current
// backoff delay. Caller must hold t.mu
func (t *clientTransport) scheduleReconnectLocked() {
	if !t.config.AutoReconnect {
		return
	}
	delay := t.backoff.next()
	t.logger.Debug().Dur("delay", delay).Msg("reconnect scheduled")
	t.reconnectTimer = time.AfterFunc(delay, func() {
		metricReconnectAttempts.Inc()
		_ = t.Connect(context.Background())
	})
}

// cancelReconnectLocked disarms a pending reconnect timer. Caller must
// hold t.mu
func (t *clientTransport) cancelReconnectLocked() {
	if t.reconnectTimer != nil {
		t.reconnectTimer.Stop()
		t.reconnectTimer = nil
	}
}

// markStable resets the backoff once the connection has proven itself
// with one successful call or one full heartbeat interval
func (t *clientTransport) markStable(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == stateOpen && gen == t.connGen && !t.stable {
		t.stable = true
		t.backoff.reset()
	}
}

// --------------------------------------------------------------------------
// Wire I/O
// --------------------------------------------------------------------------

// readLoop reads frames from the connection and demultiplexes them onto
// the pending registry by identifier until the connection dies
func (t *clientTransport) readLoop(conn IFramedConn, gen uint64) {
	for {
		data, err := conn.ReadFrame()
		if err != nil {
			t.handleConnLoss(gen, err)
			return
		}

		var frame common.ResponseFrame
		if err := t.codec.DecodeResponse(data, &frame); err != nil {
			t.logger.Warn().Err(err).Msg("dropping undecodable frame")
			continue
		}

		if t.registry.settleFrame(&frame) {
			t.markStable(gen)
		}
	}
}

// writeRequest frames and writes one registered call. An encode failure
// concerns only this call: its entry is settled directly and the
// connection is left alone. A write failure is a channel loss and the
// loss handler settles the entry. The returned error is non-nil only
// when the connection failed
func (t *clientTransport) writeRequest(conn IFramedConn, gen uint64, id uint64, req transport.Request) error {
	frame := common.NewRequestFrame(id, req.Verb, req.Target, req.Payload)
	data, err := t.codec.EncodeRequest(frame)
	if err != nil {
		t.registry.settleError(id, err)
		return nil
	}

	t.writeMu.Lock()
	err = conn.WriteFrame(data)
	t.writeMu.Unlock()

	if err != nil {
		t.handleConnLoss(gen, err)
		return err
	}
	return nil
}

// flushBuffer drains the outbound buffer in submission order onto a
// freshly opened connection. Each call receives its wire identifier only
// here. If the channel dies mid-flush the remaining calls stay buffered
// for the next successful connection; a call that merely fails to encode
// is settled on its own and the flush moves on
func (t *clientTransport) flushBuffer(gen uint64) {
	for {
		t.mu.Lock()
		if t.state != stateOpen || gen != t.connGen {
			t.mu.Unlock()
			return
		}
		call, ok := t.buffer.popFront()
		if !ok {
			t.mu.Unlock()
			return
		}

		timeout := call.req.Timeout
		if timeout <= 0 {
			timeout = t.config.CallTimeout
		}
		id := t.nextID.Add(1)
		t.registry.register(id, timeout, call.done)
		conn := t.conn
		t.mu.Unlock()

		if err := t.writeRequest(conn, gen, id, call.req); err != nil {
			return
		}
	}
}
