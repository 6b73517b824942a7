package resolve

import (
	"context"
	"strings"

	"appliance-site/internal/domain/content"
	"appliance-site/internal/source"

	"go.uber.org/zap"
)

type PageKind int

const (
	// Found is a CMS page, rendered block by block under the selected theme.
	Found PageKind = iota
	// StaticFallback is a page from the static set, rendered with its own design.
	StaticFallback
	NotFound
)

func (k PageKind) String() string {
	switch k {
	case Found:
		return "found"
	case StaticFallback:
		return "static"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

type PageResult struct {
	Kind PageKind
	Page content.Page
	Tier string
}

// Service resolves pages and entities across the configured tiers. Primary and
// secondary may be nil interfaces when a CMS is not configured; static is required.
type Service struct {
	log       *zap.Logger
	primary   source.Source
	secondary source.Source
	static    source.Source
}

func New(log *zap.Logger, primary, secondary, static source.Source) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log, primary: primary, secondary: secondary, static: static}
}

// Tiers names the configured tiers in resolution order.
func (s *Service) Tiers() []string {
	var out []string
	for _, src := range []source.Source{s.primary, s.secondary, s.static} {
		if src != nil {
			out = append(out, src.Name())
		}
	}
	return out
}

func tier[T any](src source.Source, fetch func(context.Context, source.Source) source.Result[T]) Tier[T] {
	if src == nil {
		return Tier[T]{}
	}
	return Tier[T]{
		Name:  src.Name(),
		Fetch: func(ctx context.Context) source.Result[T] { return fetch(ctx, src) },
	}
}

func run[T any](ctx context.Context, s *Service, what string, fetch func(context.Context, source.Source) source.Result[T]) Resolution[T] {
	return Chain(ctx, s.log, what,
		tier(s.primary, fetch),
		tier(s.secondary, fetch),
		tier(s.static, fetch))
}

// RouteSlug maps a request path to a page slug; the site root is "home".
func RouteSlug(routeKey string) string {
	slug := strings.Trim(strings.TrimSpace(routeKey), "/")
	if slug == "" {
		return "home"
	}
	return slug
}

// ResolvePage returns the CMS page for routeKey, else the static page, else NotFound.
func (s *Service) ResolvePage(ctx context.Context, routeKey string) PageResult {
	return s.resolvePage(ctx, routeKey, false)
}

// ResolvePreview is ResolvePage with drafts preferred in the CMS tiers.
func (s *Service) ResolvePreview(ctx context.Context, routeKey string) PageResult {
	return s.resolvePage(ctx, routeKey, true)
}

// ResolveRoute maps any site path to the page its public route serves: entity detail
// pages for /services/, /blog/ and /service-areas/, authored pages otherwise.
func (s *Service) ResolveRoute(ctx context.Context, route string, preview bool) PageResult {
	path := "/" + strings.Trim(route, "/")
	for _, d := range []struct {
		prefix string
		page   func(context.Context, string) PageResult
	}{
		{"/services/", s.ServicePage},
		{"/blog/", s.PostPage},
		{"/service-areas/", s.AreaPage},
	} {
		if slug, ok := strings.CutPrefix(path, d.prefix); ok && slug != "" && !strings.Contains(slug, "/") {
			return d.page(ctx, slug)
		}
	}
	return s.resolvePage(ctx, path, preview)
}

func (s *Service) resolvePage(ctx context.Context, routeKey string, drafts bool) PageResult {
	slug := RouteSlug(routeKey)
	res := run(ctx, s, "page:"+slug, func(ctx context.Context, src source.Source) source.Result[content.Page] {
		r := src.Page(ctx, slug, drafts)
		// a page without blocks counts as absent
		if r.Ok() && len(r.Value.Layout) == 0 {
			return source.Missing[content.Page](nil)
		}
		return r
	})
	if !res.Ok() {
		return PageResult{Kind: NotFound}
	}
	kind := Found
	if res.Tier == content.SourceStatic {
		kind = StaticFallback
	}
	return PageResult{Kind: kind, Page: res.Value, Tier: res.Tier}
}

// Settings always resolves while a static tier is configured.
func (s *Service) Settings(ctx context.Context) source.Result[content.Settings] {
	return run(ctx, s, "settings", func(ctx context.Context, src source.Source) source.Result[content.Settings] {
		return src.Settings(ctx)
	}).Result
}

func (s *Service) Services(ctx context.Context, q source.Query) source.Result[[]content.Service] {
	return run(ctx, s, "services", func(ctx context.Context, src source.Source) source.Result[[]content.Service] {
		return src.Services(ctx, q)
	}).Result
}

func (s *Service) Service(ctx context.Context, slug string) source.Result[content.Service] {
	return run(ctx, s, "service:"+slug, func(ctx context.Context, src source.Source) source.Result[content.Service] {
		return src.Service(ctx, slug)
	}).Result
}

func (s *Service) Posts(ctx context.Context, q source.Query) source.Result[[]content.BlogPost] {
	return run(ctx, s, "posts", func(ctx context.Context, src source.Source) source.Result[[]content.BlogPost] {
		return src.Posts(ctx, q)
	}).Result
}

func (s *Service) Post(ctx context.Context, slug string) source.Result[content.BlogPost] {
	return run(ctx, s, "post:"+slug, func(ctx context.Context, src source.Source) source.Result[content.BlogPost] {
		return src.Post(ctx, slug)
	}).Result
}

func (s *Service) Testimonials(ctx context.Context, q source.Query) source.Result[[]content.Testimonial] {
	return run(ctx, s, "testimonials", func(ctx context.Context, src source.Source) source.Result[[]content.Testimonial] {
		return src.Testimonials(ctx, q)
	}).Result
}

func (s *Service) TeamMembers(ctx context.Context, q source.Query) source.Result[[]content.TeamMember] {
	return run(ctx, s, "team", func(ctx context.Context, src source.Source) source.Result[[]content.TeamMember] {
		return src.TeamMembers(ctx, q)
	}).Result
}

func (s *Service) ServiceAreas(ctx context.Context, q source.Query) source.Result[[]content.ServiceArea] {
	return run(ctx, s, "service_areas", func(ctx context.Context, src source.Source) source.Result[[]content.ServiceArea] {
		return src.ServiceAreas(ctx, q)
	}).Result
}

func (s *Service) ServiceArea(ctx context.Context, slug string) source.Result[content.ServiceArea] {
	return run(ctx, s, "service_area:"+slug, func(ctx context.Context, src source.Source) source.Result[content.ServiceArea] {
		return src.ServiceArea(ctx, slug)
	}).Result
}

func (s *Service) Brands(ctx context.Context, q source.Query) source.Result[[]content.Brand] {
	return run(ctx, s, "brands", func(ctx context.Context, src source.Source) source.Result[[]content.Brand] {
		return src.Brands(ctx, q)
	}).Result
}

func (s *Service) Certifications(ctx context.Context, q source.Query) source.Result[[]content.Certification] {
	return run(ctx, s, "certifications", func(ctx context.Context, src source.Source) source.Result[[]content.Certification] {
		return src.Certifications(ctx, q)
	}).Result
}

func (s *Service) FAQs(ctx context.Context, q source.Query) source.Result[[]content.FAQ] {
	return run(ctx, s, "faqs", func(ctx context.Context, src source.Source) source.Result[[]content.FAQ] {
		return src.FAQs(ctx, q)
	}).Result
}
