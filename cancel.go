package eventual

// A Canceller is the capability exposed by an in-flight operation that
// can be asked to stop. The Deferred references it; it does not own it.
type Canceller interface {
	Cancel()
}

// CancelFunc adapts an ordinary function to the Canceller interface,
// so a context.CancelFunc or any other teardown closure can be linked
// directly.
type CancelFunc func()

func (f CancelFunc) Cancel() { f() }

// SetCanceller links the underlying operation's cancel capability to
// the Deferred, replacing any previously linked one. It has no effect
// on settlement state.
func (d *Deferred[T]) SetCanceller(c Canceller) {
	d.mu.Lock()
	d.canceller = c
	d.mu.Unlock()
}

// Cancel forwards the request to the linked Canceller, if any, and is
// a no-op otherwise. Cancel never settles the Deferred: the producer
// remains responsible for calling Resolve or Reject once the
// underlying operation reacts, and a racing settlement is neither
// blocked nor prevented.
func (d *Deferred[T]) Cancel() {
	d.mu.Lock()
	c := d.canceller
	d.mu.Unlock()

	if c != nil {
		c.Cancel()
	}
}
