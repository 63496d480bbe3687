package tapmap

import (
	"slices"
	"testing"
)

func TestListenerRegistryOrder(t *testing.T) {
	var reg ListenerRegistry
	var order []int
	reg.AddListener(func(*PointerEvent) { order = append(order, 1) })
	reg.AddListener(func(*PointerEvent) { order = append(order, 2) })
	reg.AddListener(func(*PointerEvent) { order = append(order, 3) })

	reg.Dispatch(&PointerEvent{Kind: PointerMove})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestListenerRegistryCaptureOrder(t *testing.T) {
	var reg ListenerRegistry
	var order []string
	reg.AddListener(func(*PointerEvent) { order = append(order, "a") })
	hc := reg.AddCaptureListener(func(*PointerEvent) { order = append(order, "c1") })
	reg.AddCaptureListener(func(*PointerEvent) { order = append(order, "c2") })
	reg.AddListener(func(*PointerEvent) { order = append(order, "b") })

	reg.Dispatch(&PointerEvent{Kind: PointerMove})
	want := []string{"c1", "c2", "a", "b"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	// A capture listener re-added after removal still runs ahead of the
	// listeners registered before it.
	hc.Remove()
	reg.AddCaptureListener(func(ev *PointerEvent) {
		order = append(order, "c3")
		ev.StopPropagation()
	})
	order = order[:0]
	reg.Dispatch(&PointerEvent{Kind: PointerUp})
	want = []string{"c2", "c3"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestListenerRegistryStopPropagation(t *testing.T) {
	var reg ListenerRegistry
	var calls int
	reg.AddListener(func(ev *PointerEvent) {
		calls++
		ev.StopPropagation()
	})
	reg.AddListener(func(*PointerEvent) { calls++ })

	ev := &PointerEvent{Kind: PointerUp}
	reg.Dispatch(ev)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if !ev.PropagationStopped() || ev.DefaultPrevented() {
		t.Errorf("stopped=%v prevented=%v", ev.PropagationStopped(), ev.DefaultPrevented())
	}
}

func TestListenerHandleRemove(t *testing.T) {
	var reg ListenerRegistry
	var a, b int
	ha := reg.AddListener(func(*PointerEvent) { a++ })
	hb := reg.AddListener(func(*PointerEvent) { b++ })

	if !ha.Valid() || !hb.Valid() {
		t.Fatal("fresh handles should be valid")
	}
	ha.Remove()
	if ha.Valid() {
		t.Error("removed handle still valid")
	}
	ha.Remove() // no-op
	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reg.Len())
	}

	reg.Dispatch(&PointerEvent{})
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0/1", a, b)
	}

	var zero ListenerHandle
	zero.Remove()
	if zero.Valid() {
		t.Error("zero handle should not be valid")
	}
}

func TestListenerRegistryRemoveDuringDispatch(t *testing.T) {
	var reg ListenerRegistry
	var second int
	var hb ListenerHandle
	reg.AddListener(func(*PointerEvent) { hb.Remove() })
	hb = reg.AddListener(func(*PointerEvent) { second++ })

	// The removal takes effect from the next event.
	reg.Dispatch(&PointerEvent{})
	reg.Dispatch(&PointerEvent{})
	if second != 1 {
		t.Errorf("second listener ran %d times, want 1", second)
	}
}

func TestPointerKindString(t *testing.T) {
	tests := map[PointerKind]string{
		PointerDown:    "down",
		PointerUp:      "up",
		PointerMove:    "move",
		PointerKind(9): "PointerKind(9)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
