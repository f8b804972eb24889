package services

import "sync"

// RouteEvent describes a completed planning run for a driver.
type RouteEvent struct {
	DriverID        string
	StopCount       int
	TotalDistanceKm float64
	SavingsPercent  int
}

// RouteNotifier fans RouteEvents out to subscribers. It replaces the old
// module-level listener list with an explicit object owning its lifecycle:
// construct, subscribe, unsubscribe via the returned cancel func, Close.
//
// Publish never blocks: events for subscribers with a full buffer are
// dropped rather than stalling the planning path.
type RouteNotifier struct {
	mu     sync.Mutex
	subs   map[int]chan RouteEvent
	nextID int
	closed bool
}

func NewRouteNotifier() *RouteNotifier {
	return &RouteNotifier{subs: make(map[int]chan RouteEvent)}
}

// Subscribe registers a listener and returns its channel along with a cancel
// func that removes the subscription and closes the channel. Cancel is
// idempotent and safe after Close.
func (n *RouteNotifier) Subscribe(buffer int) (<-chan RouteEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan RouteEvent, buffer)
	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers the event to every current subscriber.
func (n *RouteNotifier) Publish(ev RouteEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close removes and closes all subscriptions; further Publish calls are no-ops.
func (n *RouteNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
