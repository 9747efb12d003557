package event

// Subscription identifies one handler registered on a Feed
type Subscription uint64

type handler[T any] struct {
	id Subscription
	fn func(T)
}

// Feed is a synchronous, single-threaded notification list.
// Handlers run in subscription order on the goroutine that calls Emit.
type Feed[T any] struct {
	handlers []handler[T]
	nextID   Subscription
	blocked  bool
}

// Subscribe registers fn and returns a handle for Unsubscribe
func (f *Feed[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return 0
	}
	f.nextID++
	f.handlers = append(f.handlers, handler[T]{id: f.nextID, fn: fn})
	return f.nextID
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (f *Feed[T]) Unsubscribe(id Subscription) {
	for i, h := range f.handlers {
		if h.id == id {
			f.handlers = append(f.handlers[:i:i], f.handlers[i+1:]...)
			return
		}
	}
}

// Clear drops every handler
func (f *Feed[T]) Clear() {
	f.handlers = nil
}

// Block suppresses delivery until Block(false) is called. Events emitted
// while blocked are dropped, not queued.
func (f *Feed[T]) Block(blocked bool) {
	f.blocked = blocked
}

// Blocked reports whether delivery is suppressed
func (f *Feed[T]) Blocked() bool {
	return f.blocked
}

// Len returns the number of registered handlers
func (f *Feed[T]) Len() int {
	return len(f.handlers)
}

// Emit delivers v to every handler registered at the time of the call.
// Handlers added or removed during delivery take effect on the next Emit.
func (f *Feed[T]) Emit(v T) {
	if f.blocked || len(f.handlers) == 0 {
		return
	}
	snapshot := make([]handler[T], len(f.handlers))
	copy(snapshot, f.handlers)
	for _, h := range snapshot {
		h.fn(v)
	}
}
