package eventual

import "fmt"

// An Outcome is the settled result of a Deferred: either a success
// value or a failure reason, never both. The zero Outcome is a failure
// with a nil reason.
type Outcome[T any] struct {
	value T
	err   error
	ok    bool
}

// Success returns an Outcome carrying value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, ok: true}
}

// Failure returns an Outcome carrying err as its failure reason.
// The reason is opaque to this package; it is stored and forwarded
// unchanged, even when nil.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// Ok reports whether the Outcome is a success.
func (o Outcome[T]) Ok() bool {
	return o.ok
}

// Value returns the success value, or the zero value of T for a failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure reason, or nil for a success.
func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Value(%v)", o.value)
	}
	return fmt.Sprintf("Error(%v)", o.err)
}
