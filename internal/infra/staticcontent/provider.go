// Package staticcontent is the last content tier: a fixed copy of the site compiled
// into the binary, served when both CMSs are down or empty.
package staticcontent

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"sort"
	"strings"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/source"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// RequiredPages must exist in the static set; the site never renders these empty.
var RequiredPages = []string{"home", "about", "services"}

type pageFile struct {
	Slug   string       `yaml:"slug"`
	Title  string       `yaml:"title"`
	Design string       `yaml:"design"`
	Meta   content.Meta `yaml:"meta"`
	Layout []struct {
		Type   string         `yaml:"type"`
		Fields map[string]any `yaml:"fields"`
	} `yaml:"layout"`
}

// Provider serves the embedded content. It is read-only after Load and safe for
// concurrent use.
type Provider struct {
	settings       content.Settings
	services       []content.Service
	posts          []content.BlogPost
	testimonials   []content.Testimonial
	team           []content.TeamMember
	areas          []content.ServiceArea
	brands         []content.Brand
	certifications []content.Certification
	faqs           []content.FAQ
	pages          map[string]content.Page
}

var _ source.Source = (*Provider)(nil)

// Load reads the content compiled into the binary.
func Load() (*Provider, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "staticcontent: open embedded data")
	}
	return LoadFS(sub)
}

// MustLoad panics if the embedded content is broken, which is a build defect.
func MustLoad() *Provider {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// LoadFS reads the YAML files from fsys.
func LoadFS(fsys fs.FS) (*Provider, error) {
	p := &Provider{}

	files := []struct {
		name string
		dst  any
	}{
		{"settings.yaml", &p.settings},
		{"services.yaml", &p.services},
		{"posts.yaml", &p.posts},
		{"testimonials.yaml", &p.testimonials},
		{"team.yaml", &p.team},
		{"areas.yaml", &p.areas},
		{"brands.yaml", &p.brands},
		{"certifications.yaml", &p.certifications},
		{"faqs.yaml", &p.faqs},
	}
	for _, f := range files {
		if err := readYAML(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	var pages []pageFile
	if err := readYAML(fsys, "pages.yaml", &pages); err != nil {
		return nil, err
	}
	p.pages = make(map[string]content.Page, len(pages))
	for _, pf := range pages {
		page, err := buildPage(pf)
		if err != nil {
			return nil, err
		}
		p.pages[page.Slug] = page
	}
	for _, slug := range RequiredPages {
		if len(p.pages[slug].Layout) == 0 {
			return nil, errors.Errorf("staticcontent: page %q is missing or empty", slug)
		}
	}

	sort.SliceStable(p.services, func(i, j int) bool { return p.services[i].Order < p.services[j].Order })
	sort.SliceStable(p.posts, func(i, j int) bool { return p.posts[i].PublishedAt.After(p.posts[j].PublishedAt) })
	for i := range p.posts {
		if p.posts[i].ReadingMinutes == 0 {
			p.posts[i].ReadingMinutes = readingMinutes(p.posts[i].Body)
		}
	}
	return p, nil
}

func readYAML(fsys fs.FS, name string, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "staticcontent: read %s", name)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "staticcontent: parse %s", name)
	}
	return nil
}

func buildPage(pf pageFile) (content.Page, error) {
	slug := strings.Trim(pf.Slug, "/")
	if slug == "" {
		return content.Page{}, errors.New("staticcontent: page without slug")
	}
	theme, ok := design.Parse(pf.Design)
	if !ok && pf.Design != "" {
		return content.Page{}, errors.Errorf("staticcontent: page %q: unknown design %q", slug, pf.Design)
	}

	layout := make([]blocks.Block, 0, len(pf.Layout))
	for _, item := range pf.Layout {
		fields, err := json.Marshal(item.Fields)
		if err != nil {
			return content.Page{}, errors.Wrapf(err, "staticcontent: page %q block %s", slug, item.Type)
		}
		layout = append(layout, blocks.Decode(item.Type, fields))
	}

	meta := pf.Meta
	if meta.Title == "" {
		meta.Title = pf.Title
	}
	return content.Page{
		Slug:   slug,
		Title:  pf.Title,
		Status: content.StatusPublished,
		Layout: layout,
		Meta:   meta,
		Design: theme,
		Source: content.SourceStatic,
	}, nil
}

func readingMinutes(body string) int {
	n := len(strings.Fields(body)) / 200
	if n < 1 {
		return 1
	}
	return n
}

func (p *Provider) Name() string { return content.SourceStatic }

// Slugs lists the static page slugs in sorted order.
func (p *Provider) Slugs() []string {
	out := make([]string, 0, len(p.pages))
	for slug := range p.pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Page ignores drafts: the static set has none.
func (p *Provider) Page(_ context.Context, slug string, _ bool) source.Result[content.Page] {
	page, ok := p.pages[strings.Trim(slug, "/")]
	if !ok {
		return source.Missing[content.Page](errors.Wrapf(source.ErrNotFound, "static: page %s", slug))
	}
	page.Layout = append([]blocks.Block(nil), page.Layout...)
	return source.Found(page)
}

func (p *Provider) Settings(context.Context) source.Result[content.Settings] {
	return source.Found(p.settings)
}

func (p *Provider) Services(_ context.Context, q source.Query) source.Result[[]content.Service] {
	return source.FeaturedOrAll(q, func(q source.Query) source.Result[[]content.Service] {
		items := p.services
		if len(q.Refs) > 0 {
			items = source.PickRefs(items, q.Refs, func(s content.Service) []string { return []string{s.ID, s.Slug} })
		} else if q.Featured {
			items = filter(items, func(s content.Service) bool { return s.Featured })
		}
		return list(items, q)
	})
}

func (p *Provider) Service(_ context.Context, slug string) source.Result[content.Service] {
	return one(p.services, slug, "service", func(s content.Service) string { return s.Slug })
}

func (p *Provider) Posts(_ context.Context, q source.Query) source.Result[[]content.BlogPost] {
	items := p.posts
	if q.Category != "" {
		items = filter(items, func(b content.BlogPost) bool { return strings.EqualFold(b.Category, q.Category) })
	}
	return list(items, q)
}

func (p *Provider) Post(_ context.Context, slug string) source.Result[content.BlogPost] {
	return one(p.posts, slug, "post", func(b content.BlogPost) string { return b.Slug })
}

func (p *Provider) Testimonials(_ context.Context, q source.Query) source.Result[[]content.Testimonial] {
	items := p.testimonials
	if q.Service != "" {
		items = filter(items, func(t content.Testimonial) bool { return strings.EqualFold(t.Service, q.Service) })
	}
	return list(items, q)
}

func (p *Provider) TeamMembers(_ context.Context, q source.Query) source.Result[[]content.TeamMember] {
	return list(p.team, q)
}

func (p *Provider) ServiceAreas(_ context.Context, q source.Query) source.Result[[]content.ServiceArea] {
	return list(p.areas, q)
}

func (p *Provider) ServiceArea(_ context.Context, slug string) source.Result[content.ServiceArea] {
	return one(p.areas, slug, "service area", func(a content.ServiceArea) string { return a.Slug })
}

func (p *Provider) Brands(_ context.Context, q source.Query) source.Result[[]content.Brand] {
	return list(p.brands, q)
}

func (p *Provider) Certifications(_ context.Context, q source.Query) source.Result[[]content.Certification] {
	return list(p.certifications, q)
}

func (p *Provider) FAQs(_ context.Context, q source.Query) source.Result[[]content.FAQ] {
	items := p.faqs
	if q.Category != "" {
		items = filter(items, func(f content.FAQ) bool { return strings.EqualFold(f.Category, q.Category) })
	}
	return list(items, q)
}

// list copies so callers cannot mutate the shared slices.
func list[T any](items []T, q source.Query) source.Result[[]T] {
	items = source.Limit(items, q)
	return source.List(append([]T(nil), items...), nil)
}

func one[T any](items []T, slug, what string, key func(T) string) source.Result[T] {
	for _, it := range items {
		if key(it) == slug {
			return source.Found(it)
		}
	}
	return source.Missing[T](errors.Wrapf(source.ErrNotFound, "static: %s %s", what, slug))
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
