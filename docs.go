/*
Package eventual provides a deferred-value primitive: a Deferred[T]
that a producer settles exactly once with a value or an error, and that
any number of consumers observe or chain without nested callbacks.

A Deferred has three settlement states: it starts Pending, and moves to
Fulfilled via Resolve or to Rejected via Reject. Both are terminal.
Observers registered before settlement are notified in registration
order when it happens; observers registered after settlement are
notified synchronously at registration. Cancellation is an orthogonal
side channel: Cancel forwards to a linked Canceller and never settles
the Deferred.

The package does no scheduling of its own. Settlement, notification and
chaining all run synchronously on the calling goroutine; anything
asynchronous (the network call, the worker) lives outside and reports
in through Resolve and Reject, or through the Start convenience
constructor.

Examples

Observing an outcome:

	d := eventual.New[int]()
	d.Observe(func(out eventual.Outcome[int]) {
		if out.Ok() {
			fmt.Println("got", out.Value())
		}
	})
	d.Resolve(42)

Chaining deferred computations:

	user := fetchUser(id)                // *eventual.Deferred[User]
	posts := eventual.Then(user, func(u User) *eventual.Deferred[[]Post] {
		return fetchPosts(u)
	})
	posts.Observe(func(out eventual.Outcome[[]Post]) {
		// an error from either step lands here; fetchPosts is
		// skipped entirely if fetchUser fails
	})

Linking cancellation:

	ctx, cancel := context.WithCancel(context.Background())
	d := startWork(ctx)                  // producer honors ctx
	d.SetCanceller(eventual.CancelFunc(cancel))
	d.Cancel()                           // forwards to cancel; the
	                                     // producer still settles d
*/
package eventual
