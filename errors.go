package eventual

import "errors"

var (
	// ErrNilDeferred is the rejection reason used when a continuation
	// passed to Then returns a nil *Deferred.
	ErrNilDeferred = errors.New("eventual: continuation returned a nil deferred")
)
