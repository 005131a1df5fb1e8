package socket

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
)

// outcome is the one-shot settlement of a logical call: either a response
// or an error, never both
type outcome struct {
	resp *transport.Response
	err  error
}

// pendingCall is one outstanding identifier with its waiting caller and
// timeout timer. An entry exists from the moment the call is handed to the
// wire until its settlement
type pendingCall struct {
	id          uint64
	submittedAt time.Time
	done        chan outcome // buffered, settled exactly once
	timer       *time.Timer
	expired     atomic.Bool // deadline fired before the entry was stored
}

// pendingRegistry correlates inbound frames to outstanding calls and
// enforces per-call timeouts. Settlement removes the entry atomically, so
// every call is settled at most once regardless of which path (response,
// timeout, disconnect, dispose) wins
type pendingRegistry struct {
	calls *xsync.MapOf[uint64, *pendingCall]
}

func newPendingRegistry() *pendingRegistry {
	return &pendingRegistry{
		calls: xsync.NewMapOf[uint64, *pendingCall](),
	}
}

// register creates an entry with a deadline timer. The done channel is
// supplied by the caller so a buffered call keeps its original channel
// when it is finally handed to the wire
func (r *pendingRegistry) register(id uint64, timeout time.Duration, done chan outcome) *pendingCall {
	pc := &pendingCall{
		id:          id,
		submittedAt: time.Now(),
		done:        done,
	}

	// The timer must exist before the entry is published, every other
	// settlement path stops it through the entry. Should the deadline
	// fire before the store below, the expired flag and the re-check
	// after the store settle the call anyway
	timeoutErr := fmt.Errorf("%w after %v", common.ErrCallTimeout, timeout)
	pc.timer = time.AfterFunc(timeout, func() {
		if r.settleError(id, timeoutErr) {
			metricCallTimeouts.Inc()
			return
		}
		pc.expired.Store(true)
		if r.settleError(id, timeoutErr) {
			metricCallTimeouts.Inc()
		}
	})

	r.calls.Store(id, pc)
	if pc.expired.Load() && r.settleError(id, timeoutErr) {
		metricCallTimeouts.Inc()
	}

	return pc
}

// settleFrame resolves the entry matching an inbound frame. Frames for
// unknown or already-settled identifiers are dropped silently: stray and
// duplicate frames are a normal occurrence, not an error condition.
// Reports whether the frame settled a successful call
func (r *pendingRegistry) settleFrame(frame *common.ResponseFrame) bool {
	pc, ok := r.calls.LoadAndDelete(frame.ID)
	if !ok {
		return false
	}
	pc.timer.Stop()

	if common.IsSuccessStatus(frame.StatusCode) {
		pc.done <- outcome{resp: &transport.Response{
			StatusCode: frame.StatusCode,
			Body:       frame.Body,
		}}
		return true
	}

	pc.done <- outcome{err: &common.RemoteError{
		StatusCode: frame.StatusCode,
		Details:    frame.Body,
	}}
	return false
}

// settleError rejects a single entry. Reports whether the entry was still
// live
func (r *pendingRegistry) settleError(id uint64, err error) bool {
	pc, ok := r.calls.LoadAndDelete(id)
	if !ok {
		return false
	}
	pc.timer.Stop()
	pc.done <- outcome{err: err}
	return true
}

// rejectAll settles every live entry with the given reason and clears the
// registry. Used on disconnect and dispose
func (r *pendingRegistry) rejectAll(err error) {
	r.calls.Range(func(id uint64, _ *pendingCall) bool {
		r.settleError(id, err)
		return true
	})
}

// size returns the number of live entries
func (r *pendingRegistry) size() int {
	return r.calls.Size()
}
