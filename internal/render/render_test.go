package render

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeLookup struct {
	services     []content.Service
	featured     []content.Service
	faqs         []content.FAQ
	testimonials []content.Testimonial
	queries      atomic.Int32
}

func (f *fakeLookup) Services(_ context.Context, q source.Query) source.Result[[]content.Service] {
	f.queries.Add(1)
	return source.FeaturedOrAll(q, func(q source.Query) source.Result[[]content.Service] {
		items := f.services
		if len(q.Refs) > 0 {
			items = source.PickRefs(items, q.Refs, func(s content.Service) []string { return []string{s.ID, s.Slug} })
		} else if q.Featured {
			items = f.featured
		}
		return source.List(source.Limit(items, q), nil)
	})
}

func (f *fakeLookup) Posts(context.Context, source.Query) source.Result[[]content.BlogPost] {
	return source.Down[[]content.BlogPost](nil)
}

func (f *fakeLookup) Testimonials(_ context.Context, q source.Query) source.Result[[]content.Testimonial] {
	return source.List(source.Limit(f.testimonials, q), nil)
}

func (f *fakeLookup) TeamMembers(context.Context, source.Query) source.Result[[]content.TeamMember] {
	return source.Missing[[]content.TeamMember](nil)
}

func (f *fakeLookup) ServiceAreas(context.Context, source.Query) source.Result[[]content.ServiceArea] {
	return source.Found([]content.ServiceArea{{Slug: "riverside", City: "Riverside", State: "CA"}})
}

func (f *fakeLookup) FAQs(_ context.Context, q source.Query) source.Result[[]content.FAQ] {
	return source.List(source.Limit(f.faqs, q), nil)
}

func newRenderer(t *testing.T, l Lookup) *Renderer {
	return NewRenderer(DefaultRegistry(l), zaptest.NewLogger(t))
}

func kinds(out []Rendered) []blocks.Kind {
	ks := make([]blocks.Kind, 0, len(out))
	for _, r := range out {
		ks = append(ks, r.Kind)
	}
	return ks
}

func TestRenderBlocks_SkipsUnknownKeepsOrder(t *testing.T) {
	r := newRenderer(t, &fakeLookup{})
	layout := []blocks.Block{
		blocks.Hero{Heading: "Fast repair"},
		blocks.Unknown{Tag: "carousel"},
		blocks.FAQ{Items: []blocks.FAQItem{{Question: "Q1", Answer: "A1"}}, Limit: 10},
	}

	out := r.RenderBlocks(context.Background(), layout, Context{Theme: design.Classic})

	require.Len(t, out, 2)
	assert.Equal(t, []blocks.Kind{blocks.KindHero, blocks.KindFAQ}, kinds(out))
	assert.Equal(t, 0, out[0].Position)
	assert.Equal(t, 2, out[1].Position)
	assert.Contains(t, string(out[0].HTML), "Fast repair")
	assert.Contains(t, string(out[1].HTML), "Q1")
}

func TestRenderBlocks_OrderIndependentOfFetchCompletion(t *testing.T) {
	l := &fakeLookup{
		services:     []content.Service{{ID: "1", Slug: "fridge", Name: "Fridge"}},
		featured:     []content.Service{{ID: "1", Slug: "fridge", Name: "Fridge"}},
		testimonials: []content.Testimonial{{Name: "Ann", Rating: 4, Quote: "Great"}},
		faqs:         []content.FAQ{{Question: "Cost?", Answer: "$59"}},
	}
	r := newRenderer(t, l)
	layout := []blocks.Block{
		blocks.Testimonials{Limit: 3},
		blocks.Content{Body: "**bold**"},
		blocks.FeaturedServices{Limit: 6},
		blocks.FAQ{Limit: 10},
		blocks.ServiceAreas{Limit: 12},
	}

	for i := 0; i < 20; i++ {
		out := r.RenderBlocks(context.Background(), layout, Context{})
		require.Len(t, out, len(layout))
		for pos, rendered := range out {
			assert.Equal(t, pos, rendered.Position)
			assert.Equal(t, layout[pos].Kind(), rendered.Kind)
		}
	}
}

func TestRenderBlocks_MissingDataRendersEmptySection(t *testing.T) {
	r := newRenderer(t, &fakeLookup{})
	out := r.RenderBlocks(context.Background(), []blocks.Block{
		blocks.TeamMembers{Heading: "Team", Limit: 6},
		blocks.BlogPosts{Heading: "Posts", Limit: 3},
		blocks.CTA{Heading: "Call", Style: "primary"},
	}, Context{})

	require.Len(t, out, 3)
	assert.Contains(t, string(out[0].HTML), "block-empty")
	assert.Contains(t, string(out[1].HTML), "block-empty")
	assert.Contains(t, string(out[2].HTML), "Call")
}

func TestFeaturedServices_ReferencesAndFallbackToAll(t *testing.T) {
	l := &fakeLookup{services: []content.Service{
		{ID: "1", Slug: "fridge", Name: "Fridge"},
		{ID: "2", Slug: "oven", Name: "Oven"},
	}}
	r := newRenderer(t, l)

	out := r.RenderBlocks(context.Background(), []blocks.Block{
		blocks.FeaturedServices{Services: []string{"oven"}, Limit: 6},
	}, Context{})
	require.Len(t, out, 1)
	assert.Contains(t, string(out[0].HTML), "/services/oven")
	assert.NotContains(t, string(out[0].HTML), "/services/fridge")

	// nothing flagged featured: the block lists every service
	out = r.RenderBlocks(context.Background(), []blocks.Block{blocks.FeaturedServices{Limit: 6}}, Context{})
	assert.Contains(t, string(out[0].HTML), "/services/fridge")
	assert.Contains(t, string(out[0].HTML), "/services/oven")
}

func TestRenderBlocks_PanickingEntryIsContained(t *testing.T) {
	reg := NewRegistry()
	reg.Register(blocks.KindHero, Entry{Render: func(io.Writer, BlockView) error { panic("boom") }})
	reg.Register(blocks.KindCTA, Entry{
		Fetch:  func(context.Context, blocks.Block) (any, error) { panic("boom") },
		Render: partial(views, "cta"),
	})
	reg.Register(blocks.KindContent, Entry{Render: partial(views, "content")})
	r := NewRenderer(reg, zaptest.NewLogger(t))

	out := r.RenderBlocks(context.Background(), []blocks.Block{
		blocks.Hero{}, blocks.CTA{}, blocks.Content{Body: "still here"},
	}, Context{})

	require.Len(t, out, 3)
	assert.Contains(t, string(out[0].HTML), "block-empty")
	assert.Contains(t, string(out[1].HTML), "block-empty")
	assert.Contains(t, string(out[2].HTML), "still here")
}

func TestHero_PhoneComesFromSettings(t *testing.T) {
	r := newRenderer(t, &fakeLookup{})
	rc := Context{Settings: content.Settings{Phone: "(555) 013-2040"}}
	out := r.RenderBlocks(context.Background(), []blocks.Block{blocks.Hero{Heading: "Hi", ShowPhone: true}}, rc)
	assert.Contains(t, string(out[0].HTML), `href="tel:5550132040"`)
}

func TestMarkdown_Sanitises(t *testing.T) {
	html := string(Markdown("# Title\n\n<script>alert(1)</script>\n\n- a\n- b"))
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<li>a</li>")
	assert.NotContains(t, html, "<script>")
	assert.Empty(t, Markdown(""))
}

func TestRegistry_KnowsEveryKind(t *testing.T) {
	reg := DefaultRegistry(&fakeLookup{})
	assert.ElementsMatch(t, blocks.Kinds(), reg.Kinds())
}

func TestThemeFor(t *testing.T) {
	rc := Context{Theme: design.Bold}
	assert.Equal(t, design.Bold, ThemeFor(content.Page{}, rc))
	assert.Equal(t, design.Minimal, ThemeFor(content.Page{Design: design.Minimal}, rc))
	assert.Equal(t, design.Default, ThemeFor(content.Page{}, Context{}))
}

func TestRenderPage_Document(t *testing.T) {
	r := newRenderer(t, &fakeLookup{})
	page := content.Page{
		Title:  "About",
		Meta:   content.Meta{Description: "Family owned"},
		Layout: []blocks.Block{blocks.Hero{Heading: "Since 2004"}},
		Source: content.SourceSanity,
	}
	rc := Context{Theme: design.Modern, Settings: content.Settings{SiteName: "Ace", Phone: "555"}}

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(context.Background(), &buf, page, rc))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>About | Ace</title>")
	assert.Contains(t, html, `class="theme-modern header-split"`)
	assert.Contains(t, html, "Since 2004")
	assert.Contains(t, html, `content="Family owned"`)
	assert.NotContains(t, html, "preview-banner")
}

func TestRenderPage_StaticPageKeepsItsDesign(t *testing.T) {
	r := newRenderer(t, &fakeLookup{})
	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(context.Background(), &buf,
		content.Page{Title: "Home", Design: design.Classic, Layout: []blocks.Block{blocks.Hero{}}},
		Context{Theme: design.Industrial, Preview: true}))

	assert.Contains(t, buf.String(), "theme-classic")
	assert.Contains(t, buf.String(), "preview-banner")
}

func TestRenderNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t, &fakeLookup{}).RenderNotFound(&buf, Context{}))
	assert.Contains(t, buf.String(), "Page not found")
	assert.Contains(t, buf.String(), "theme-classic")
}

func TestHref(t *testing.T) {
	assert.Equal(t, "tel:5550132040", string(href("tel:5550132040")))
	assert.Equal(t, "/contact", string(href("/contact")))
	assert.Equal(t, "https://example.com/x", string(href("https://example.com/x")))
	assert.Equal(t, "#", string(href("javascript:alert(1)")))
}
