package event

// Handler processes specific event types within a context T
// Subscribers implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch
	HandleEvent(ctx T, ev Event)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []Type
}

// FuncHandler adapts a plain function into a Handler for callers that do
// not want a dedicated subscriber type
type FuncHandler[T any] struct {
	Types []Type
	Fn    func(ctx T, ev Event)
}

func (h FuncHandler[T]) HandleEvent(ctx T, ev Event) { h.Fn(ctx, ev) }
func (h FuncHandler[T]) EventTypes() []Type          { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Dispatch delivers one event synchronously (in-step collision path)
//   - DrainQueue delivers externally queued events (lifecycle signals)
type Router[T any] struct {
	handlers map[Type][]Handler[T]
	queue    *Queue
}

// NewRouter creates a router. queue may be nil for dispatch-only routers
func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[Type][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch delivers one event to every registered handler, synchronously,
// in registration order, before returning
func (r *Router[T]) Dispatch(ctx T, ev Event) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

// DrainQueue consumes all pending queued events and routes them in FIFO
// order. Returns the number of events delivered. No-op without a queue
func (r *Router[T]) DrainQueue(ctx T) int {
	if r.queue == nil {
		return 0
	}
	events := r.queue.Consume()
	for _, ev := range events {
		r.Dispatch(ctx, ev)
	}
	return len(events)
}

// HasHandlers returns true if any handlers are registered for the type
func (r *Router[T]) HasHandlers(t Type) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the type
func (r *Router[T]) HandlerCount(t Type) int {
	return len(r.handlers[t])
}
