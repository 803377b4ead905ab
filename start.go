package eventual

import "github.com/pkg/errors"

// Resolved returns a Deferred already settled with value.
func Resolved[T any](value T) *Deferred[T] {
	d := New[T]()
	d.Resolve(value)
	return d
}

// Rejected returns a Deferred already settled with err.
func Rejected[T any](err error) *Deferred[T] {
	d := New[T]()
	d.Reject(err)
	return d
}

// Start runs producer on its own goroutine and returns a pending
// Deferred that the producer settles through the supplied resolve and
// reject functions. A panic inside producer is recovered and delivered
// as a rejection.
//
// Start is producer-side convenience; the Deferred itself still does
// no scheduling, so observers run on the producer's goroutine when it
// settles.
func Start[T any](producer func(resolve func(T), reject func(error))) *Deferred[T] {
	d := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = errors.Errorf("%+v", r)
				}
				d.Reject(errors.Wrap(err, "panic during deferred execution"))
			}
		}()
		producer(d.Resolve, d.Reject)
	}()

	return d
}
