package eventual

import "context"

// Await blocks until d settles or ctx is done, whichever comes first,
// and returns the value or the failure reason. When ctx wins the race,
// the context's error is returned and the Deferred is left untouched,
// still pending from this package's point of view.
//
// Await is built on Observe; the Deferred itself never blocks anyone.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	settled := make(chan Outcome[T], 1)
	d.Observe(func(out Outcome[T]) {
		settled <- out
	})

	select {
	case out := <-settled:
		if !out.Ok() {
			var zero T
			return zero, out.Err()
		}
		return out.Value(), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
