package eventual

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"
)

// An Observer is a callback that receives the outcome of a Deferred.
// Each registration is invoked exactly once.
type Observer[T any] func(Outcome[T])

// A Deferred represents the eventual outcome of a unit of work. It is
// created pending, settles at most conceptually once via Resolve or
// Reject, and delivers its outcome to every registered observer.
//
// A Deferred performs no scheduling of its own: Resolve, Reject and
// Observe run synchronously on the calling goroutine, and observers of
// a pending Deferred are notified inline on the goroutine that settles
// it. The outcome and registry are guarded by a mutex, so observers
// may be registered from any goroutine; settling, however, is expected
// to come from a single producer.
type Deferred[T any] struct {
	mu        sync.Mutex
	id        uuid.UUID
	outcome   *Outcome[T]
	observers *queue.Queue
	canceller Canceller
}

// New returns a pending Deferred with no outcome and no observers.
func New[T any]() *Deferred[T] {
	return &Deferred[T]{
		id:        uuid.New(),
		observers: queue.New(),
	}
}

// Resolve settles the Deferred with value and notifies every registered
// observer, in registration order, before returning.
//
// Settling an already-settled Deferred is a caller error. It is not
// guarded against: the last write wins, and notification replays over
// whatever observers are currently registered (normally none, since the
// registry is drained on every pass).
func (d *Deferred[T]) Resolve(value T) {
	d.settle(Success(value))
}

// Reject settles the Deferred with err as the failure reason and
// notifies every registered observer, in registration order, before
// returning. The same double-settlement caveat as Resolve applies.
func (d *Deferred[T]) Reject(err error) {
	d.settle(Failure[T](err))
}

func (d *Deferred[T]) settle(out Outcome[T]) {
	d.mu.Lock()
	d.outcome = &out
	// Snapshot and clear the registry under the lock, then notify
	// outside it, so observers may register further observers or
	// settle other deferreds without deadlocking.
	drained := make([]Observer[T], 0, d.observers.Length())
	for d.observers.Length() > 0 {
		drained = append(drained, d.observers.Remove().(Observer[T]))
	}
	d.mu.Unlock()

	for _, observe := range drained {
		observe(out)
	}
}

// Observe registers fn to receive the outcome. While the Deferred is
// pending, fn is enqueued and invoked later on the settling goroutine.
// Once settled, fn is invoked synchronously, before Observe returns.
//
// Registrations are not deduplicated; registering the same function
// twice invokes it twice. There is no way to unregister.
func (d *Deferred[T]) Observe(fn Observer[T]) {
	d.mu.Lock()
	if d.outcome == nil {
		d.observers.Add(fn)
		d.mu.Unlock()
		return
	}
	out := *d.outcome
	d.mu.Unlock()
	fn(out)
}

// Settled reports whether the Deferred has an outcome.
func (d *Deferred[T]) Settled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.outcome != nil
}

// ID returns the identity stamped on the Deferred at construction,
// for correlating log lines across a chain.
func (d *Deferred[T]) ID() uuid.UUID {
	return d.id
}

func (d *Deferred[T]) String() string {
	d.mu.Lock()
	out := d.outcome
	d.mu.Unlock()

	switch {
	case out == nil:
		return fmt.Sprintf("Deferred(%s pending)", d.id)
	case out.ok:
		return fmt.Sprintf("Deferred(%s fulfilled)", d.id)
	default:
		return fmt.Sprintf("Deferred(%s rejected)", d.id)
	}
}
