package events

import "testing"

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()

	broker := NewBroker[int]()
	var got []string

	broker.Subscribe(func(int) { got = append(got, "first") })
	broker.Subscribe(func(int) { got = append(got, "second") })
	broker.Subscribe(func(int) { got = append(got, "third") })

	broker.Publish(1)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery order mismatch at %d: %v", i, got)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	broker := NewBroker[string]()
	calls := 0
	sub := broker.Subscribe(func(string) { calls++ })

	broker.Publish("a")
	sub.Unsubscribe()
	sub.Unsubscribe() // idempotent
	broker.Publish("b")

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if broker.Len() != 0 {
		t.Fatalf("expected no listeners, got %d", broker.Len())
	}
}

func TestSubscribeNilListener(t *testing.T) {
	t.Parallel()

	broker := NewBroker[int]()
	sub := broker.Subscribe(nil)
	sub.Unsubscribe()

	if broker.Len() != 0 {
		t.Fatal("nil listener must not register")
	}
	broker.Publish(42)
}

func TestPublishSnapshotValue(t *testing.T) {
	t.Parallel()

	broker := NewBroker[[]string]()
	var seen []string
	broker.Subscribe(func(snapshot []string) { seen = snapshot })

	broker.Publish([]string{"p1", "p2"})

	if len(seen) != 2 || seen[0] != "p1" {
		t.Fatalf("unexpected snapshot %v", seen)
	}
}
