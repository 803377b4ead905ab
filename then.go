package eventual

import "github.com/pkg/errors"

// Then chains next after d, returning a new Deferred for the
// continuation's result. It returns immediately, without blocking.
//
// If d settles with a value, next is invoked with it, exactly once, and
// the returned Deferred adopts the outcome of the inner Deferred that
// next produces. If d settles with an error, next is never invoked and
// the error propagates to the returned Deferred directly, so an error
// anywhere in a chain short-circuits every continuation after it.
//
// A panic inside next becomes a rejection, and a nil inner Deferred
// rejects with ErrNilDeferred.
//
// Then is a package-level function because the continuation may change
// the value type; for same-type chains the Deferred.Then method reads
// better.
func Then[T, P any](d *Deferred[T], next func(T) *Deferred[P]) *Deferred[P] {
	chained := New[P]()

	d.Observe(func(out Outcome[T]) {
		if !out.Ok() {
			chained.Reject(out.Err())
			return
		}

		inner, err := runContinuation(next, out.Value())
		if err != nil {
			chained.Reject(err)
			return
		}
		if inner == nil {
			chained.Reject(ErrNilDeferred)
			return
		}

		inner.Observe(func(out Outcome[P]) {
			if out.Ok() {
				chained.Resolve(out.Value())
			} else {
				chained.Reject(out.Err())
			}
		})
	})

	return chained
}

// Then chains next after d without changing the value type.
// See the package-level Then for the full contract.
func (d *Deferred[T]) Then(next func(T) *Deferred[T]) *Deferred[T] {
	return Then(d, next)
}

// runContinuation invokes next, converting a panic into an error so it
// is delivered through the outcome rather than unwinding the settling
// goroutine.
func runContinuation[T, P any](next func(T) *Deferred[P], value T) (d *Deferred[P], err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				rerr = errors.Errorf("%+v", r)
			}
			d, err = nil, errors.Wrap(rerr, "panic in continuation")
		}
	}()
	return next(value), nil
}
