package source

import (
	"context"

	"appliance-site/internal/domain/content"
)

// Query narrows a collection read. Zero values mean "no filter".
type Query struct {
	Limit int
	// Refs selects documents by id or slug, keeping the given order.
	Refs []string
	// Featured prefers flagged services. A tier with nothing flagged answers with all of
	// its services instead, so a CMS without flags still wins over the static defaults.
	Featured bool
	Category string
	// Service filters testimonials by service name.
	Service string
}

// Source is one content tier. Implementations must be safe to call speculatively: the
// resolver may call one and discard the answer.
type Source interface {
	Name() string

	Page(ctx context.Context, slug string, drafts bool) Result[content.Page]
	Settings(ctx context.Context) Result[content.Settings]

	Services(ctx context.Context, q Query) Result[[]content.Service]
	Service(ctx context.Context, slug string) Result[content.Service]
	Posts(ctx context.Context, q Query) Result[[]content.BlogPost]
	Post(ctx context.Context, slug string) Result[content.BlogPost]
	Testimonials(ctx context.Context, q Query) Result[[]content.Testimonial]
	TeamMembers(ctx context.Context, q Query) Result[[]content.TeamMember]
	ServiceAreas(ctx context.Context, q Query) Result[[]content.ServiceArea]
	ServiceArea(ctx context.Context, slug string) Result[content.ServiceArea]
	Brands(ctx context.Context, q Query) Result[[]content.Brand]
	Certifications(ctx context.Context, q Query) Result[[]content.Certification]
	FAQs(ctx context.Context, q Query) Result[[]content.FAQ]
}

// Limit applies q.Limit to an already ordered list.
func Limit[T any](items []T, q Query) []T {
	if q.Limit > 0 && len(items) > q.Limit {
		return items[:q.Limit]
	}
	return items
}

// PickRefs returns the items whose key matches one of refs, in refs order.
func PickRefs[T any](items []T, refs []string, keys func(T) []string) []T {
	if len(refs) == 0 {
		return items
	}
	out := make([]T, 0, len(refs))
	for _, ref := range refs {
		for _, it := range items {
			if contains(keys(it), ref) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FeaturedOrAll runs fetch and, for a featured query that found nothing, repeats it
// unfiltered against the same tier.
func FeaturedOrAll[T any](q Query, fetch func(Query) Result[[]T]) Result[[]T] {
	res := fetch(q)
	if q.Featured && len(q.Refs) == 0 && res.Outcome == NotFound {
		q.Featured = false
		return fetch(q)
	}
	return res
}
