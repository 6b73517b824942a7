package staticcontent

import (
	"context"
	"testing"
	"testing/fstest"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/source"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedContent(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	for _, slug := range RequiredPages {
		res := p.Page(context.Background(), slug, false)
		require.True(t, res.Ok(), slug)
		assert.NotEmpty(t, res.Value.Layout, slug)
		assert.Equal(t, content.SourceStatic, res.Value.Source)
		assert.Equal(t, design.Classic, res.Value.Design)
	}

	settings := p.Settings(context.Background())
	require.True(t, settings.Ok())
	assert.NotEmpty(t, settings.Value.Phone)
}

func TestPage_HomeLayoutDecodesBlocks(t *testing.T) {
	p := MustLoad()
	res := p.Page(context.Background(), "/home/", false)
	require.True(t, res.Ok())

	hero, ok := res.Value.Layout[0].(blocks.Hero)
	require.True(t, ok)
	assert.Equal(t, "Book a repair", hero.PrimaryCTA.Label)
	assert.True(t, hero.ShowPhone)

	fs, ok := res.Value.Layout[1].(blocks.FeaturedServices)
	require.True(t, ok)
	assert.Equal(t, 3, fs.Limit)
}

func TestPage_UnknownSlugIsNotFound(t *testing.T) {
	res := MustLoad().Page(context.Background(), "does-not-exist", false)
	assert.Equal(t, source.NotFound, res.Outcome)
	assert.True(t, errors.Is(res.Err, source.ErrNotFound))
}

func TestPage_CallersCannotMutateLayout(t *testing.T) {
	p := MustLoad()
	first := p.Page(context.Background(), "home", false)
	first.Value.Layout[0] = blocks.Unknown{Tag: "x"}

	again := p.Page(context.Background(), "home", false)
	assert.Equal(t, blocks.KindHero, again.Value.Layout[0].Kind())
}

func TestServices_FilterAndOrder(t *testing.T) {
	p := MustLoad()
	ctx := context.Background()

	all := p.Services(ctx, source.Query{})
	require.True(t, all.Ok())
	for i := 1; i < len(all.Value); i++ {
		assert.LessOrEqual(t, all.Value[i-1].Order, all.Value[i].Order)
	}

	featured := p.Services(ctx, source.Query{Featured: true, Limit: 2})
	require.True(t, featured.Ok())
	assert.Len(t, featured.Value, 2)
	for _, s := range featured.Value {
		assert.True(t, s.Featured)
	}

	picked := p.Services(ctx, source.Query{Refs: []string{"dryer-repair", "static-washer-repair"}})
	require.True(t, picked.Ok())
	require.Len(t, picked.Value, 2)
	assert.Equal(t, "dryer-repair", picked.Value[0].Slug)
	assert.Equal(t, "washer-repair", picked.Value[1].Slug)
}

func TestPosts_NewestFirstAndCategory(t *testing.T) {
	p := MustLoad()
	ctx := context.Background()

	posts := p.Posts(ctx, source.Query{})
	require.True(t, posts.Ok())
	for i := 1; i < len(posts.Value); i++ {
		assert.False(t, posts.Value[i].PublishedAt.After(posts.Value[i-1].PublishedAt))
	}
	assert.Positive(t, posts.Value[0].ReadingMinutes)

	dryers := p.Posts(ctx, source.Query{Category: "dryers"})
	require.True(t, dryers.Ok())
	assert.Len(t, dryers.Value, 1)

	none := p.Posts(ctx, source.Query{Category: "microwaves"})
	assert.Equal(t, source.NotFound, none.Outcome)
}

func TestDetailLookups(t *testing.T) {
	p := MustLoad()
	ctx := context.Background()

	assert.True(t, p.Service(ctx, "oven-repair").Ok())
	assert.True(t, p.Post(ctx, "dishwasher-smells").Ok())
	assert.True(t, p.ServiceArea(ctx, "corona").Ok())

	assert.Equal(t, source.NotFound, p.Service(ctx, "microwave-repair").Outcome)
	assert.Equal(t, source.NotFound, p.ServiceArea(ctx, "nowhere").Outcome)
}

func TestTestimonialsAndFAQFilters(t *testing.T) {
	p := MustLoad()
	ctx := context.Background()

	ts := p.Testimonials(ctx, source.Query{Service: "dryer repair"})
	require.True(t, ts.Ok())
	require.Len(t, ts.Value, 1)
	assert.Equal(t, "Derek T.", ts.Value[0].Name)

	faqs := p.FAQs(ctx, source.Query{Category: "general"})
	require.True(t, faqs.Ok())
	assert.Len(t, faqs.Value, 2)
}

func minimalFS(pages string) fstest.MapFS {
	fsys := fstest.MapFS{"pages.yaml": {Data: []byte(pages)}}
	for _, name := range []string{"settings.yaml", "services.yaml", "posts.yaml", "testimonials.yaml",
		"team.yaml", "areas.yaml", "brands.yaml", "certifications.yaml", "faqs.yaml"} {
		fsys[name] = &fstest.MapFile{Data: []byte("")}
	}
	return fsys
}

func TestLoadFS_RequiresCorePages(t *testing.T) {
	_, err := LoadFS(minimalFS(`
- slug: home
  layout:
    - type: hero
      fields: {heading: Hi}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"about"`)
}

func TestLoadFS_RejectsUnknownDesign(t *testing.T) {
	_, err := LoadFS(minimalFS(`
- slug: home
  design: neon
  layout:
    - type: hero
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")
}

func TestLoadFS_UnknownBlockTypeKept(t *testing.T) {
	p, err := LoadFS(minimalFS(`
- slug: home
  design: modern
  layout: [{type: hero}, {type: carousel}]
- slug: about
  layout: [{type: content}]
- slug: services
  layout: [{type: featuredServices}]
`))
	require.NoError(t, err)

	res := p.Page(context.Background(), "home", false)
	require.True(t, res.Ok())
	assert.Equal(t, design.Modern, res.Value.Design)
	assert.Equal(t, blocks.Kind("carousel"), res.Value.Layout[1].Kind())
	assert.Equal(t, []string{"about", "home", "services"}, p.Slugs())
}
