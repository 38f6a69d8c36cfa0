package core

import "context"

// OneShot bridges a fire-and-forget callback to a blocking wait. One side
// hands Resolve to the asynchronous producer as its completion callback,
// the other side blocks on Await until the value arrives.
//
// A OneShot serves a single exchange: it is created right before the
// asynchronous call and discarded after Await returns. Resolve must be
// called at most once; a second call is a bug in the producer and panics.
type OneShot[T any] struct {
	done  chan struct{}
	value T
}

func NewOneShot[T any]() *OneShot[T] {
	return &OneShot[T]{done: make(chan struct{})}
}

// Resolve records the value and wakes every waiter. Safe to call from any
// goroutine. The value write is ordered before the channel close, so a
// waiter never observes a partially-written value.
func (o *OneShot[T]) Resolve(value T) {
	o.value = value
	close(o.done)
}

// Await blocks until Resolve has been called and returns the recorded
// value. There is no timeout: if the producer never resolves, Await blocks
// forever.
func (o *OneShot[T]) Await() T {
	<-o.done
	return o.value
}

// AwaitContext is Await with cancellation, for callers that cannot afford
// an unbounded wait. Returns the zero value and ctx.Err() if the context
// ends first.
func (o *OneShot[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-o.done:
		return o.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
