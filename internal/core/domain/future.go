package domain

import "sync"

// Future is a single-assignment result bound to one unit of work.
// It is resolved exactly once, with either a value or an error.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// NewFuture returns an unresolved future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future that already holds value and err.
func Resolved[T any](value T, err error) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(value, err)
	return f
}

// Resolve stores the outcome. Only the first call has an effect; it reports whether
// this call was the one that resolved the future.
func (f *Future[T]) Resolve(value T, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.value = value
		f.err = err
		resolved = true
		close(f.done)
	})
	return resolved
}

// Fail resolves the future with err and the zero value.
func (f *Future[T]) Fail(err error) bool {
	var zero T
	return f.Resolve(zero, err)
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsResolved reports whether the future holds an outcome.
func (f *Future[T]) IsResolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result blocks until the future is resolved and returns its outcome.
// Code running on a pool worker should use workqueue.Await instead.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}
