package tapmap

import "slices"

// PointerEvent is a low-level pointer event in window coordinates.
//
// Capture listeners run first, then the rest, each in registration order.
// A listener that calls StopPropagation
// ends dispatch for that event: no later listener sees it.
type PointerEvent struct {
	Kind PointerKind
	// X and Y are window coordinates, before surface and camera conversion.
	X, Y float64
	// PointerID is 0 for the mouse and 1-9 for touches.
	PointerID int
	// Synthetic is set for injected events.
	Synthetic bool

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault marks the event's default action as cancelled.
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation stops dispatch to listeners registered after the caller.
func (e *PointerEvent) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *PointerEvent) PropagationStopped() bool {
	return e.propagationStopped
}

// PointerListener receives pointer events from a PointerSource.
type PointerListener func(*PointerEvent)

// PointerSource delivers pointer events to registered listeners.
type PointerSource interface {
	AddListener(fn PointerListener) ListenerHandle
}

// CapturingSource is a PointerSource that can register a listener ahead of
// every other listener, regardless of registration order.
type CapturingSource interface {
	PointerSource
	AddCaptureListener(fn PointerListener) ListenerHandle
}

type pointerListener struct {
	id      uint32
	fn      PointerListener
	capture bool
}

// ListenerRegistry is an ordered set of pointer listeners. It implements
// PointerSource and is meant to be embedded by concrete sources.
// The zero value is ready to use.
type ListenerRegistry struct {
	listeners []pointerListener
	nextID    uint32
}

// ListenerHandle allows removing a registered pointer listener.
type ListenerHandle struct {
	id  uint32
	reg *ListenerRegistry
}

// AddListener registers fn and returns a handle that removes it.
func (r *ListenerRegistry) AddListener(fn PointerListener) ListenerHandle {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, pointerListener{id: id, fn: fn})
	return ListenerHandle{id: id, reg: r}
}

// AddCaptureListener registers fn in front of all non-capture listeners.
// Capture listeners run among themselves in registration order.
func (r *ListenerRegistry) AddCaptureListener(fn PointerListener) ListenerHandle {
	r.nextID++
	id := r.nextID
	i := 0
	for i < len(r.listeners) && r.listeners[i].capture {
		i++
	}
	r.listeners = slices.Insert(r.listeners, i, pointerListener{id: id, fn: fn, capture: true})
	return ListenerHandle{id: id, reg: r}
}

// Len returns the number of registered listeners.
func (r *ListenerRegistry) Len() int {
	return len(r.listeners)
}

// Dispatch delivers ev to every listener in registration order, stopping
// early if a listener stops propagation. Listeners added or removed during
// dispatch take effect from the next event.
func (r *ListenerRegistry) Dispatch(ev *PointerEvent) {
	for _, l := range slices.Clone(r.listeners) {
		l.fn(ev)
		if ev.propagationStopped {
			break
		}
	}
}

func (r *ListenerRegistry) remove(id uint32) bool {
	for i := range r.listeners {
		if r.listeners[i].id == id {
			copy(r.listeners[i:], r.listeners[i+1:])
			r.listeners[len(r.listeners)-1] = pointerListener{}
			r.listeners = r.listeners[:len(r.listeners)-1]
			return true
		}
	}
	return false
}

// Remove unregisters the listener. Removing twice, or removing the zero
// handle, is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

// Valid reports whether h refers to a registered listener.
func (h ListenerHandle) Valid() bool {
	if h.reg == nil {
		return false
	}
	for i := range h.reg.listeners {
		if h.reg.listeners[i].id == h.id {
			return true
		}
	}
	return false
}
