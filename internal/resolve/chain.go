// Package resolve walks the content tiers in fixed order: primary CMS, secondary CMS,
// then the static copy compiled into the binary.
package resolve

import (
	"context"

	"appliance-site/internal/source"

	"go.uber.org/zap"
)

type State int

const (
	TryPrimary State = iota
	TrySecondary
	UseStatic
	Done
)

func (s State) String() string {
	switch s {
	case TryPrimary:
		return "try_primary"
	case TrySecondary:
		return "try_secondary"
	case UseStatic:
		return "use_static"
	case Done:
		return "done"
	}
	return "unknown"
}

// Tier is one attempt. A nil Fetch means the tier is not configured and is skipped.
type Tier[T any] struct {
	Name  string
	Fetch func(ctx context.Context) source.Result[T]
}

// Resolution is the terminal state of a Chain. When no tier answered, Outcome is the
// last tier's outcome and Tier is empty.
type Resolution[T any] struct {
	source.Result[T]
	Tier     string
	Attempts int
}

// Chain runs primary, secondary and static in that order and stops at the first OK.
// Every tier runs at most once; Unavailable and NotFound both advance.
func Chain[T any](ctx context.Context, log *zap.Logger, what string, primary, secondary, static Tier[T]) Resolution[T] {
	if log == nil {
		log = zap.NewNop()
	}
	tiers := [...]Tier[T]{TryPrimary: primary, TrySecondary: secondary, UseStatic: static}

	out := Resolution[T]{Result: source.Missing[T](nil)}
	state := TryPrimary
	for state != Done {
		tier := tiers[state]
		next := state + 1
		if tier.Fetch == nil {
			state = next
			continue
		}

		res := tier.Fetch(ctx)
		out.Attempts++
		if res.Ok() {
			out.Result = res
			out.Tier = tier.Name
			log.Debug("content resolved",
				zap.String("what", what),
				zap.String("tier", tier.Name),
				zap.Int("attempts", out.Attempts))
			return out
		}

		out.Result = res
		log.Debug("content tier skipped",
			zap.String("what", what),
			zap.String("tier", tier.Name),
			zap.Stringer("state", state),
			zap.Stringer("outcome", res.Outcome),
			zap.Error(res.Err))
		state = next
	}
	return out
}
