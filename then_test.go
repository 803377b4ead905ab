package eventual

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestThenResolvesWithInnerValue(t *testing.T) {
	d := New[int]()

	invoked := false
	inner := New[int]()
	chained := d.Then(func(v int) *Deferred[int] {
		invoked = true
		require.Equal(t, 2, v)
		return inner
	})

	require.False(t, invoked, "the continuation must wait for the value")
	d.Resolve(2)
	require.True(t, invoked)
	require.False(t, chained.Settled(), "the chain waits for the inner deferred")

	inner.Resolve(20)
	var got int
	chained.Observe(func(out Outcome[int]) { got = out.Value() })
	require.Equal(t, 20, got)
}

func TestThenChangesValueType(t *testing.T) {
	d := New[int]()
	text := Then(d, func(v int) *Deferred[string] {
		return Resolved(strconv.Itoa(v))
	})

	d.Resolve(17)
	text.Observe(func(out Outcome[string]) {
		require.True(t, out.Ok())
		require.Equal(t, "17", out.Value())
	})
}

func TestThenSkipsContinuationOnRejection(t *testing.T) {
	boom := errors.New("boom")
	d := New[int]()

	chained := d.Then(func(int) *Deferred[int] {
		t.Fatal("the continuation must not run after a rejection")
		return nil
	})

	d.Reject(boom)
	chained.Observe(func(out Outcome[int]) {
		require.False(t, out.Ok())
		require.Equal(t, boom, out.Err())
	})
}

func TestThenPropagatesInnerRejection(t *testing.T) {
	innerErr := errors.New("inner failed")
	d := New[int]()

	chained := d.Then(func(int) *Deferred[int] {
		return Rejected[int](innerErr)
	})

	d.Resolve(1)
	chained.Observe(func(out Outcome[int]) {
		require.False(t, out.Ok())
		require.Equal(t, innerErr, out.Err())
	})
}

func TestChainShortCircuitsOnMiddleRejection(t *testing.T) {
	e2 := errors.New("e2")
	d := New[int]()

	final := d.
		Then(func(v int) *Deferred[int] {
			return Resolved(v + 1)
		}).
		Then(func(int) *Deferred[int] {
			return Rejected[int](e2)
		}).
		Then(func(int) *Deferred[int] {
			t.Fatal("the third continuation must never run")
			return nil
		})

	d.Resolve(1)
	final.Observe(func(out Outcome[int]) {
		require.False(t, out.Ok())
		require.Equal(t, e2, out.Err())
	})
}

func TestChainComposesLeftToRight(t *testing.T) {
	d := New[int]()

	final := d.
		Then(func(v int) *Deferred[int] { return Resolved(v * 2) }).
		Then(func(v int) *Deferred[int] { return Resolved(v + 3) })

	d.Resolve(7)
	final.Observe(func(out Outcome[int]) {
		require.Equal(t, 17, out.Value())
	})
}

func TestThenContinuationRunsAtMostOnce(t *testing.T) {
	d := New[int]()

	runs := 0
	d.Then(func(v int) *Deferred[int] {
		runs++
		return Resolved(v)
	})

	d.Resolve(1)
	d.Resolve(2) // caller error; must not re-run the continuation
	require.Equal(t, 1, runs)
}

func TestThenRecoversContinuationPanic(t *testing.T) {
	d := New[int]()

	chained := d.Then(func(int) *Deferred[int] {
		panic("kaboom")
	})

	require.NotPanics(t, func() { d.Resolve(1) })
	chained.Observe(func(out Outcome[int]) {
		require.False(t, out.Ok())
		require.Contains(t, out.Err().Error(), "kaboom")
	})
}

func TestThenRejectsNilInnerDeferred(t *testing.T) {
	d := New[int]()

	chained := d.Then(func(int) *Deferred[int] {
		return nil
	})

	d.Resolve(1)
	chained.Observe(func(out Outcome[int]) {
		require.False(t, out.Ok())
		require.ErrorIs(t, out.Err(), ErrNilDeferred)
	})
}

func TestThenOnSettledDeferred(t *testing.T) {
	chained := Then(Resolved(3), func(v int) *Deferred[string] {
		return Resolved(strconv.Itoa(v * 3))
	})

	require.True(t, chained.Settled(), "chaining off a settled deferred settles inline")
	chained.Observe(func(out Outcome[string]) {
		require.Equal(t, "9", out.Value())
	})
}
