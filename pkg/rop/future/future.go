package future

import "sync"

// Awaitable is a computation the caller can block on until it resolves.
type Awaitable interface {
	Wait()
}

var _ Awaitable = Future[struct{}]{}

type state[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
}

// Promise is the producer side of a Future.
type Promise[T any] struct {
	s *state[T]
}

// Future is a value that becomes available later. It may be awaited any
// number of times. The zero Future is already resolved with the zero value.
type Future[T any] struct {
	s *state[T]
}

func New[T any]() (Promise[T], Future[T]) {
	s := &state[T]{done: make(chan struct{})}
	return Promise[T]{s: s}, Future[T]{s: s}
}

// Resolved returns a Future that already holds value.
func Resolved[T any](value T) Future[T] {
	p, f := New[T]()
	p.Fulfill(value)
	return f
}

// Go runs fn in a new goroutine and returns a Future of its result.
func Go[T any](fn func() T) Future[T] {
	p, f := New[T]()
	go func() {
		p.Fulfill(fn())
	}()
	return f
}

// Fulfill resolves the Future with value. Only the first call has an effect.
func (p Promise[T]) Fulfill(value T) {
	p.s.once.Do(func() {
		p.s.value = value
		close(p.s.done)
	})
}

// Await blocks until the Future is resolved and returns its value.
func (f Future[T]) Await() T {
	if f.s == nil {
		var zero T
		return zero
	}
	<-f.s.done
	return f.s.value
}

// Wait blocks like Await and discards the value.
func (f Future[T]) Wait() {
	f.Await()
}

// Done reports whether the Future is resolved, without blocking.
func (f Future[T]) Done() bool {
	if f.s == nil {
		return true
	}
	select {
	case <-f.s.done:
		return true
	default:
		return false
	}
}

// Then returns a Future of transform applied to the value of f.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	return Go(func() B {
		return transform(f.Await())
	})
}
