package socket

import (
	"sync"

	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
)

// bufferedCall is a call submitted while no connection exists. It has not
// been assigned a wire identifier yet; that happens only once it is
// actually written
type bufferedCall struct {
	req  transport.Request
	done chan outcome // shared with the waiting caller
}

// outboundBuffer holds calls submitted while the channel is unavailable.
// FIFO, bounded; overflow rejects the newest call and never evicts older
// entries
type outboundBuffer struct {
	mu       sync.Mutex
	calls    []*bufferedCall
	capacity int
}

func newOutboundBuffer(capacity int) *outboundBuffer {
	return &outboundBuffer{capacity: capacity}
}

// push appends a call in submission order. Returns ErrQueueFull when the
// buffer is at capacity
func (b *outboundBuffer) push(call *bufferedCall) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.calls) >= b.capacity {
		return common.ErrQueueFull
	}
	b.calls = append(b.calls, call)
	return nil
}

// popFront removes and returns the oldest buffered call
func (b *outboundBuffer) popFront() (*bufferedCall, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.calls) == 0 {
		return nil, false
	}
	call := b.calls[0]
	b.calls = b.calls[1:]
	return call, true
}

// rejectAll settles every buffered call with the given reason and empties
// the buffer. Used on dispose
func (b *outboundBuffer) rejectAll(err error) {
	b.mu.Lock()
	calls := b.calls
	b.calls = nil
	b.mu.Unlock()

	for _, call := range calls {
		call.done <- outcome{err: err}
	}
}

// size returns the number of buffered calls
func (b *outboundBuffer) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}
