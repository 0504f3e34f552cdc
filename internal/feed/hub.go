// Package feed is the in-process side of the change feed: the Redis pub/sub
// bridge broadcasts into a Hub, and each live connection registers a
// Subscription for one screening. Notifications carry no payload; a woken
// subscriber refetches the current snapshot.
package feed

import "sync"

// Subscription receives a signal on C whenever its screening changes.
// Delivery is coalescing: a slow consumer sees at least one signal for any
// burst of changes, never a backlog.
type Subscription struct {
	ScreeningID string
	C           <-chan struct{}

	id int
	ch chan struct{}
}

type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]*Subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]*Subscription)}
}

func (h *Hub) Register(screeningID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan struct{}, 1)
	sub := &Subscription{
		ScreeningID: screeningID,
		C:           ch,
		id:          h.nextID,
		ch:          ch,
	}

	if h.subs[screeningID] == nil {
		h.subs[screeningID] = make(map[int]*Subscription)
	}
	h.subs[screeningID][sub.id] = sub

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.ScreeningID]
	if set == nil {
		return
	}

	delete(set, sub.id)
	if len(set) == 0 {
		delete(h.subs, sub.ScreeningID)
	}
}

// Broadcast wakes every subscription registered for the screening. Sends
// never block: if a signal is already pending it is coalesced.
func (h *Hub) Broadcast(screeningID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[screeningID] {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}
