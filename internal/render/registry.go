package render

import (
	"context"
	"html/template"
	"io"
	"sort"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/source"

	"github.com/pkg/errors"
)

// FetchFunc loads the related entities a block needs. Nil for blocks that render from
// their own fields.
type FetchFunc func(ctx context.Context, b blocks.Block) (any, error)

// RenderFunc writes one block. Data is whatever the entry's Fetch returned.
type RenderFunc func(w io.Writer, v BlockView) error

type BlockView struct {
	Block blocks.Block
	Data  any
	Ctx   Context
}

type Entry struct {
	Fetch  FetchFunc
	Render RenderFunc
}

// Registry maps a block kind to its entry. Build it at startup; it is read-only afterwards.
type Registry struct {
	entries map[blocks.Kind]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[blocks.Kind]Entry{}}
}

func (r *Registry) Register(kind blocks.Kind, e Entry) {
	r.entries[kind] = e
}

func (r *Registry) Lookup(kind blocks.Kind) (Entry, bool) {
	e, ok := r.entries[kind]
	return e, ok
}

func (r *Registry) Kinds() []blocks.Kind {
	out := make([]blocks.Kind, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// errEmpty marks a block whose data could not be found; it renders as an empty section.
var errEmpty = errors.New("block has no data")

func partial(t *template.Template, name string) RenderFunc {
	return func(w io.Writer, v BlockView) error {
		return t.ExecuteTemplate(w, "block/"+name, v)
	}
}

func data[T any](res source.Result[T]) (any, error) {
	if !res.Ok() {
		return nil, errors.Wrap(errEmpty, res.Outcome.String())
	}
	return res.Value, nil
}

// DefaultRegistry registers every known block kind against the built-in templates.
func DefaultRegistry(lookup Lookup) *Registry {
	t := views
	r := NewRegistry()

	r.Register(blocks.KindHero, Entry{Render: partial(t, "hero")})
	r.Register(blocks.KindCTA, Entry{Render: partial(t, "cta")})
	r.Register(blocks.KindContent, Entry{Render: partial(t, "content")})

	r.Register(blocks.KindFAQ, Entry{
		Fetch: func(ctx context.Context, b blocks.Block) (any, error) {
			faq := b.(blocks.FAQ)
			if len(faq.Items) > 0 {
				return source.Limit(faq.Items, source.Query{Limit: faq.Limit}), nil
			}
			res := lookup.FAQs(ctx, source.Query{Limit: faq.Limit, Category: faq.Category})
			if !res.Ok() {
				return data(res)
			}
			items := make([]blocks.FAQItem, 0, len(res.Value))
			for _, f := range res.Value {
				items = append(items, blocks.FAQItem{Question: f.Question, Answer: f.Answer})
			}
			return items, nil
		},
		Render: partial(t, "faq"),
	})

	r.Register(blocks.KindFeaturedServices, Entry{
		Fetch: func(ctx context.Context, b blocks.Block) (any, error) {
			fs := b.(blocks.FeaturedServices)
			if len(fs.Services) > 0 {
				return data(lookup.Services(ctx, source.Query{Limit: fs.Limit, Refs: fs.Services}))
			}
			// each tier falls back to all of its services when none are flagged
			return data(lookup.Services(ctx, source.Query{Limit: fs.Limit, Featured: true}))
		},
		Render: partial(t, "featuredServices"),
	})

	r.Register(blocks.KindServiceAreas, Entry{
		Fetch: func(ctx context.Context, b blocks.Block) (any, error) {
			return data(lookup.ServiceAreas(ctx, source.Query{Limit: b.(blocks.ServiceAreas).Limit}))
		},
		Render: partial(t, "serviceAreas"),
	})

	r.Register(blocks.KindTestimonials, Entry{
		Fetch: func(ctx context.Context, b blocks.Block) (any, error) {
			tb := b.(blocks.Testimonials)
			return data(lookup.Testimonials(ctx, source.Query{Limit: tb.Limit, Service: tb.Service}))
		},
		Render: partial(t, "testimonials"),
	})

	r.Register(blocks.KindTeamMembers, Entry{
		Fetch: func(ctx context.Context, b blocks.Block) (any, error) {
			return data(lookup.TeamMembers(ctx, source.Query{Limit: b.(blocks.TeamMembers).Limit}))
		},
		Render: partial(t, "teamMembers"),
	})

	r.Register(blocks.KindBlogPosts, Entry{
		Fetch: func(ctx context.Context, b blocks.Block) (any, error) {
			bp := b.(blocks.BlogPosts)
			return data(lookup.Posts(ctx, source.Query{Limit: bp.Limit, Category: bp.Category}))
		},
		Render: partial(t, "blogPosts"),
	})

	return r
}
