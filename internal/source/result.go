// Package source defines the content tiers the resolver walks and their result type.
package source

import "github.com/pkg/errors"

var (
	// ErrUnavailable means the tier could not be reached or is not configured.
	ErrUnavailable = errors.New("content source unavailable")
	// ErrNotFound means the tier answered but holds no matching document.
	ErrNotFound = errors.New("content not found")
)

type Outcome int

const (
	OK Outcome = iota
	Unavailable
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Unavailable:
		return "unavailable"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// Result is what one tier returns for one query. Value is meaningful only when
// Outcome is OK.
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

func Found[T any](v T) Result[T] {
	return Result[T]{Value: v, Outcome: OK}
}

func Missing[T any](err error) Result[T] {
	if err == nil {
		err = ErrNotFound
	}
	return Result[T]{Outcome: NotFound, Err: err}
}

func Down[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnavailable
	}
	return Result[T]{Outcome: Unavailable, Err: err}
}

// FromError classifies err: nil is OK, ErrNotFound is NotFound, anything else Unavailable.
func FromError[T any](v T, err error) Result[T] {
	switch {
	case err == nil:
		return Found(v)
	case errors.Is(err, ErrNotFound):
		return Missing[T](err)
	default:
		return Down[T](err)
	}
}

// List treats an empty list as NotFound so the resolver moves on to the next tier.
func List[T any](items []T, err error) Result[[]T] {
	if err != nil {
		return FromError[[]T](nil, err)
	}
	if len(items) == 0 {
		return Missing[[]T](nil)
	}
	return Found(items)
}

func (r Result[T]) Ok() bool { return r.Outcome == OK }
