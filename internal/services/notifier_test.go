package services

import "testing"

func TestNotifierDeliversToSubscribers(t *testing.T) {
	n := NewRouteNotifier()
	defer n.Close()

	ch, cancel := n.Subscribe(1)
	defer cancel()

	n.Publish(RouteEvent{DriverID: "driver-01", StopCount: 3})

	select {
	case ev := <-ch:
		if ev.DriverID != "driver-01" || ev.StopCount != 3 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestNotifierCancelStopsDelivery(t *testing.T) {
	n := NewRouteNotifier()
	defer n.Close()

	ch, cancel := n.Subscribe(1)
	cancel()

	// Channel is closed by cancel; a receive completes immediately with the
	// zero value and ok=false.
	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after cancel")
	}

	// Cancel is idempotent.
	cancel()

	n.Publish(RouteEvent{DriverID: "driver-01"})
}

func TestNotifierPublishNeverBlocks(t *testing.T) {
	n := NewRouteNotifier()
	defer n.Close()

	_, cancel := n.Subscribe(0)
	defer cancel()

	// Unbuffered subscriber with no reader: publish must drop, not block.
	n.Publish(RouteEvent{DriverID: "driver-01"})
	n.Publish(RouteEvent{DriverID: "driver-01"})
}

func TestNotifierClose(t *testing.T) {
	n := NewRouteNotifier()

	a, cancelA := n.Subscribe(1)
	b, _ := n.Subscribe(1)

	n.Close()

	if _, ok := <-a; ok {
		t.Fatal("subscriber a not closed")
	}
	if _, ok := <-b; ok {
		t.Fatal("subscriber b not closed")
	}

	// Publish and cancel after Close are no-ops.
	n.Publish(RouteEvent{DriverID: "driver-01"})
	cancelA()

	// Subscribing after Close yields a closed channel.
	c, cancelC := n.Subscribe(1)
	defer cancelC()
	if _, ok := <-c; ok {
		t.Fatal("subscription after Close should be closed")
	}
}
