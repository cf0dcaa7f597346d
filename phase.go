package await

import "fmt"

// phaseKind discriminates the variants of Phase.
type phaseKind int

const (
	kindEmpty phaseKind = iota
	kindSuccess
	kindFailure
)

// Phase is the tagged state of an asynchronous operation: pending (Empty),
// completed with a value (Success), or completed with an error (Failure).
// Exactly one variant is active at a time, and the zero value is Empty.
//
// A phase only moves forward: Empty to one of the terminal variants, never
// back, and never from one terminal variant to the other.
type Phase[V any] struct {
	kind  phaseKind
	value V
	err   error
}

// Empty returns the pending phase.
func Empty[V any]() Phase[V] {
	return Phase[V]{kind: kindEmpty}
}

// Success returns a terminal phase carrying the operation's value.
func Success[V any](value V) Phase[V] {
	return Phase[V]{kind: kindSuccess, value: value}
}

// Failure returns a terminal phase carrying the operation's error.
func Failure[V any](err error) Phase[V] {
	return Phase[V]{kind: kindFailure, err: err}
}

// IsEmpty reports whether the operation has not completed yet.
func (p Phase[V]) IsEmpty() bool { return p.kind == kindEmpty }

// IsSuccess reports whether the operation completed with a value.
func (p Phase[V]) IsSuccess() bool { return p.kind == kindSuccess }

// IsFailure reports whether the operation completed with an error.
func (p Phase[V]) IsFailure() bool { return p.kind == kindFailure }

// Terminal reports whether the phase is Success or Failure. A terminal phase
// never changes again for the same activation.
func (p Phase[V]) Terminal() bool { return p.kind != kindEmpty }

// Value returns the success value and whether the phase is Success.
func (p Phase[V]) Value() (V, bool) {
	return p.value, p.kind == kindSuccess
}

// Err returns the failure error, or nil if the phase is not Failure.
// The error is the exact value the operation returned; it is never wrapped
// or classified.
func (p Phase[V]) Err() error {
	if p.kind == kindFailure {
		return p.err
	}
	return nil
}

// String returns a short description of the phase for logs and debugging.
func (p Phase[V]) String() string {
	switch p.kind {
	case kindSuccess:
		return fmt.Sprintf("success(%v)", p.value)
	case kindFailure:
		return fmt.Sprintf("failure(%v)", p.err)
	default:
		return "empty"
	}
}

// Match dispatches on the phase variant and returns the matching branch's
// result. Requiring all three branches keeps call sites exhaustive when code
// is written against Phase.
func Match[V, R any](p Phase[V], onEmpty func() R, onSuccess func(V) R, onFailure func(error) R) R {
	switch p.kind {
	case kindSuccess:
		return onSuccess(p.value)
	case kindFailure:
		return onFailure(p.err)
	default:
		return onEmpty()
	}
}
