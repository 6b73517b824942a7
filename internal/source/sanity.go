package source

import (
	"context"
	"encoding/json"

	"appliance-site/internal/adapter"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/sanity"

	"github.com/pkg/errors"
)

// Finder is the Sanity query collaborator: find(collection, filter, limit) and findGlobal.
type Finder interface {
	Find(ctx context.Context, docType string, q Query, slug string) ([]json.RawMessage, error)
	FindGlobal(ctx context.Context, id string) (json.RawMessage, error)
}

// DraftFinder is implemented by finders that can read unpublished documents.
type DraftFinder interface {
	FindDraft(ctx context.Context, docType, slug string) ([]json.RawMessage, error)
}

// Sanity reads a Sanity dataset. A nil finder makes every call Unavailable.
type Sanity struct {
	finder Finder
	adapt  adapter.Sanity
}

func NewSanity(f Finder, images adapter.ImageURLBuilder) *Sanity {
	return &Sanity{finder: f, adapt: adapter.Sanity{Images: images}}
}

func (s *Sanity) Name() string { return content.SourceSanity }

// adapters is safe on a nil receiver so method values can be taken before ready().
func (s *Sanity) adapters() adapter.Sanity {
	if s == nil {
		return adapter.Sanity{}
	}
	return s.adapt
}

func (s *Sanity) ready() error {
	if s == nil || s.finder == nil {
		return errors.Wrap(ErrUnavailable, "sanity: not configured")
	}
	return nil
}

// findAll fetches and decodes documents of one type. Documents that fail to decode are
// skipped rather than failing the list.
func findAll[D, T any](ctx context.Context, s *Sanity, docType string, q Query, adapt func(D) T) Result[[]T] {
	if err := s.ready(); err != nil {
		return Down[[]T](err)
	}
	raws, err := s.finder.Find(ctx, docType, q, "")
	if err != nil {
		return FromError[[]T](nil, err)
	}
	return List(decodeAll(raws, adapt), nil)
}

func findOne[D, T any](ctx context.Context, s *Sanity, docType, slug string, adapt func(D) T) Result[T] {
	var zero T
	if err := s.ready(); err != nil {
		return Down[T](err)
	}
	raws, err := s.finder.Find(ctx, docType, Query{Limit: 1}, slug)
	if err != nil {
		return FromError(zero, err)
	}
	items := decodeAll(raws, adapt)
	if len(items) == 0 {
		return Missing[T](errors.Wrapf(ErrNotFound, "sanity: %s %s", docType, slug))
	}
	return Found(items[0])
}

func decodeAll[D, T any](raws []json.RawMessage, adapt func(D) T) []T {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var doc D
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		out = append(out, adapt(doc))
	}
	return out
}

func (s *Sanity) Page(ctx context.Context, slug string, drafts bool) Result[content.Page] {
	if drafts {
		if df, ok := s.finderForDrafts(); ok {
			raws, err := df.FindDraft(ctx, sanity.TypePage, slug)
			if err == nil {
				if page, ok := preferDraft(decodeAll(raws, s.adapters().Page)); ok {
					return Found(page)
				}
			}
		}
	}
	return findOne(ctx, s, sanity.TypePage, slug, s.adapters().Page)
}

// preferDraft picks the drafts.* document when both it and the published one match.
func preferDraft(pages []content.Page) (content.Page, bool) {
	for _, p := range pages {
		if p.Status == content.StatusDraft {
			return p, true
		}
	}
	if len(pages) == 0 {
		return content.Page{}, false
	}
	return pages[0], true
}

func (s *Sanity) finderForDrafts() (DraftFinder, bool) {
	if s == nil || s.finder == nil {
		return nil, false
	}
	df, ok := s.finder.(DraftFinder)
	return df, ok
}

func (s *Sanity) Settings(ctx context.Context) Result[content.Settings] {
	if err := s.ready(); err != nil {
		return Down[content.Settings](err)
	}
	raw, err := s.finder.FindGlobal(ctx, sanity.TypeSiteSettings)
	if err != nil {
		return FromError(content.Settings{}, err)
	}
	var doc sanity.SiteSettings
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Down[content.Settings](errors.Wrap(ErrUnavailable, "sanity: settings: "+err.Error()))
	}
	return Found(s.adapters().Settings(doc))
}

func (s *Sanity) Services(ctx context.Context, q Query) Result[[]content.Service] {
	return FeaturedOrAll(q, func(q Query) Result[[]content.Service] { return s.services(ctx, q) })
}

func (s *Sanity) services(ctx context.Context, q Query) Result[[]content.Service] {
	res := findAll(ctx, s, sanity.TypeService, q, s.adapters().Service)
	if !res.Ok() {
		return res
	}
	picked := PickRefs(res.Value, q.Refs, func(v content.Service) []string { return []string{v.ID, v.Slug} })
	return List(Limit(picked, q), nil)
}

func (s *Sanity) Service(ctx context.Context, slug string) Result[content.Service] {
	return findOne(ctx, s, sanity.TypeService, slug, s.adapters().Service)
}

func (s *Sanity) Posts(ctx context.Context, q Query) Result[[]content.BlogPost] {
	return findAll(ctx, s, sanity.TypePost, q, s.adapters().Post)
}

func (s *Sanity) Post(ctx context.Context, slug string) Result[content.BlogPost] {
	return findOne(ctx, s, sanity.TypePost, slug, s.adapters().Post)
}

func (s *Sanity) Testimonials(ctx context.Context, q Query) Result[[]content.Testimonial] {
	return findAll(ctx, s, sanity.TypeTestimonial, q, s.adapters().Testimonial)
}

func (s *Sanity) TeamMembers(ctx context.Context, q Query) Result[[]content.TeamMember] {
	return findAll(ctx, s, sanity.TypeTeamMember, q, s.adapters().TeamMember)
}

func (s *Sanity) ServiceAreas(ctx context.Context, q Query) Result[[]content.ServiceArea] {
	return findAll(ctx, s, sanity.TypeServiceArea, q, s.adapters().ServiceArea)
}

func (s *Sanity) ServiceArea(ctx context.Context, slug string) Result[content.ServiceArea] {
	return findOne(ctx, s, sanity.TypeServiceArea, slug, s.adapters().ServiceArea)
}

func (s *Sanity) Brands(ctx context.Context, q Query) Result[[]content.Brand] {
	return findAll(ctx, s, sanity.TypeBrand, q, s.adapters().Brand)
}

func (s *Sanity) Certifications(ctx context.Context, q Query) Result[[]content.Certification] {
	return findAll(ctx, s, sanity.TypeCertification, q, s.adapters().Certification)
}

func (s *Sanity) FAQs(ctx context.Context, q Query) Result[[]content.FAQ] {
	return findAll(ctx, s, sanity.TypeFAQ, q, s.adapters().FAQ)
}
