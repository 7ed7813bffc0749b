package event_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/platter/pkg/event"
)

func TestFireReachesAllListeners(t *testing.T) {
	event.Flush()
	defer event.Flush()

	var got []interface{}
	event.Listen("order.created", func(payload interface{}) {
		got = append(got, payload)
	})
	event.Listen("order.created", func(payload interface{}) {
		got = append(got, payload)
	})
	event.Listen("order.updated", func(payload interface{}) {
		t.Error("unrelated listener fired")
	})

	event.Fire("order.created", 42)

	if len(got) != 2 {
		t.Fatalf("listeners fired = %d, want 2", len(got))
	}
	if got[0] != 42 || got[1] != 42 {
		t.Errorf("payloads = %v, want 42s", got)
	}
}

func TestFireWithNoListenersIsHarmless(t *testing.T) {
	event.Flush()
	defer event.Flush()

	event.Fire("nobody.cares", "x")
}

func TestFireAsyncDelivers(t *testing.T) {
	event.Flush()
	defer event.Flush()

	done := make(chan interface{}, 1)
	event.Listen("order.created", func(payload interface{}) {
		done <- payload
	})

	event.FireAsync("order.created", "order-1")

	select {
	case payload := <-done:
		if payload != "order-1" {
			t.Errorf("payload = %v, want order-1", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("async handler never ran")
	}
}
