package socket

import (
	"math"
	"time"
)

// reconnectBackoff produces bounded exponential reconnect delays:
//
//	delay = min(initial * factor^attempts, max)
//
// The attempt count increments after every failed or aborted attempt and
// is reset only once a connection has proven stable, so a server that
// accepts connections and immediately drops them still backs off
type reconnectBackoff struct {
	initial  time.Duration
	max      time.Duration
	factor   float64
	attempts int
}

func newReconnectBackoff(initial, max time.Duration, factor float64) *reconnectBackoff {
	return &reconnectBackoff{initial: initial, max: max, factor: factor}
}

// next returns the delay for the upcoming attempt and advances the
// attempt count
func (b *reconnectBackoff) next() time.Duration {
	delay := time.Duration(float64(b.initial) * math.Pow(b.factor, float64(b.attempts)))
	if delay <= 0 || delay > b.max {
		delay = b.max
	}
	b.attempts++
	return delay
}

// reset restores the initial delay
func (b *reconnectBackoff) reset() {
	b.attempts = 0
}
