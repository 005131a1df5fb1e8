package socket

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirecall/wirecall/rpc/common"
)

// TestRegistrySettleSuccess verifies a 2xx frame settles the call with
// the response body and removes the entry
func TestRegistrySettleSuccess(t *testing.T) {
	r := newPendingRegistry()
	done := make(chan outcome, 1)
	r.register(1, time.Second, done)

	ok := r.settleFrame(common.NewResponseFrame(1, 200, []byte(`"pong"`)))
	require.True(t, ok)

	out := <-done
	require.NoError(t, out.err)
	assert.Equal(t, 200, out.resp.StatusCode)
	assert.Equal(t, `"pong"`, string(out.resp.Body))
	assert.Equal(t, 0, r.size())
}

// TestRegistrySettleRemoteFailure verifies a non-2xx frame settles the
// call with a RemoteError carrying status and detail
func TestRegistrySettleRemoteFailure(t *testing.T) {
	r := newPendingRegistry()
	done := make(chan outcome, 1)
	r.register(7, time.Second, done)

	ok := r.settleFrame(common.NewResponseFrame(7, 503, []byte(`overloaded`)))
	assert.False(t, ok)

	out := <-done
	require.Error(t, out.err)

	var remoteErr *common.RemoteError
	require.True(t, errors.As(out.err, &remoteErr))
	assert.Equal(t, 503, remoteErr.StatusCode)
	assert.Equal(t, "overloaded", string(remoteErr.Details))
}

// TestRegistryStrayFrameDropped verifies frames for unknown identifiers
// are dropped silently
func TestRegistryStrayFrameDropped(t *testing.T) {
	r := newPendingRegistry()
	assert.False(t, r.settleFrame(common.NewResponseFrame(99, 200, nil)))
}

// TestRegistryCallTimeout verifies a call with no response settles as a
// timeout at or after its deadline and leaves no entry behind
func TestRegistryCallTimeout(t *testing.T) {
	r := newPendingRegistry()
	done := make(chan outcome, 1)
	start := time.Now()
	r.register(1, 50*time.Millisecond, done)

	out := <-done
	require.ErrorIs(t, out.err, common.ErrCallTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, 0, r.size())

	// A late frame for the timed out identifier has no further effect
	assert.False(t, r.settleFrame(common.NewResponseFrame(1, 200, nil)))
	select {
	case <-done:
		t.Fatal("call settled twice")
	default:
	}
}

// TestRegistryImmediateDeadline verifies a deadline that fires around the
// moment the entry is stored still settles the call exactly once instead
// of stranding or panicking
func TestRegistryImmediateDeadline(t *testing.T) {
	r := newPendingRegistry()

	for id := uint64(1); id <= 200; id++ {
		done := make(chan outcome, 1)
		r.register(id, time.Nanosecond, done)

		select {
		case out := <-done:
			require.ErrorIs(t, out.err, common.ErrCallTimeout)
		case <-time.After(time.Second):
			t.Fatalf("call %d was never settled", id)
		}
	}
	assert.Equal(t, 0, r.size())
}

// TestRegistryTimerCancelledOnSettlement verifies settlement through a
// frame cancels the timeout so no second settlement fires later
func TestRegistryTimerCancelledOnSettlement(t *testing.T) {
	r := newPendingRegistry()
	done := make(chan outcome, 1)
	r.register(1, 40*time.Millisecond, done)

	require.True(t, r.settleFrame(common.NewResponseFrame(1, 204, nil)))
	<-done

	time.Sleep(80 * time.Millisecond)
	select {
	case out := <-done:
		t.Fatalf("leaked timer settled the call again: %+v", out)
	default:
	}
}

// TestRegistryRejectAll verifies every live entry is settled with the
// given reason exactly once
func TestRegistryRejectAll(t *testing.T) {
	r := newPendingRegistry()
	chans := make([]chan outcome, 3)
	for i := range chans {
		chans[i] = make(chan outcome, 1)
		r.register(uint64(i+1), time.Second, chans[i])
	}

	r.rejectAll(common.ErrDisconnected)

	assert.Equal(t, 0, r.size())
	for _, done := range chans {
		out := <-done
		assert.ErrorIs(t, out.err, common.ErrDisconnected)
	}
}
