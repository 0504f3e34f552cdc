package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drained(sub *Subscription) bool {
	select {
	case <-sub.C:
		return false
	default:
		return true
	}
}

func TestBroadcastReachesSubscribers(t *testing.T) {
	h := NewHub()

	a := h.Register("s1")
	b := h.Register("s1")
	other := h.Register("s2")

	h.Broadcast("s1")

	assert.False(t, drained(a))
	assert.False(t, drained(b))
	assert.True(t, drained(other))
}

func TestBroadcastCoalesces(t *testing.T) {
	h := NewHub()
	sub := h.Register("s1")

	// A burst of changes produces exactly one pending signal.
	h.Broadcast("s1")
	h.Broadcast("s1")
	h.Broadcast("s1")

	assert.False(t, drained(sub))
	assert.True(t, drained(sub))
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	sub := h.Register("s1")
	h.Unsubscribe(sub)

	h.Broadcast("s1")

	assert.True(t, drained(sub))
}

func TestBroadcastNoSubscribers(t *testing.T) {
	h := NewHub()
	// Must not panic or block.
	h.Broadcast("nobody")
}

func TestUnsubscribeNil(t *testing.T) {
	h := NewHub()
	h.Unsubscribe(nil)
}
