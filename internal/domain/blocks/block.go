// Package blocks defines the closed set of layout blocks a page can be composed of.
//
// A layout is stored by the CMS as a list of (tag, fields) pairs. Decode turns each pair into
// one of the typed variants below; a tag outside the set becomes Unknown so the caller can
// skip it without failing the page.
package blocks

type Kind string

const (
	KindHero             Kind = "hero"
	KindCTA              Kind = "cta"
	KindContent          Kind = "content"
	KindFAQ              Kind = "faq"
	KindFeaturedServices Kind = "featuredServices"
	KindServiceAreas     Kind = "serviceAreas"
	KindTestimonials     Kind = "testimonials"
	KindTeamMembers      Kind = "teamMembers"
	KindBlogPosts        Kind = "blogPosts"
)

// Kinds lists every supported block kind.
func Kinds() []Kind {
	return []Kind{
		KindHero, KindCTA, KindContent, KindFAQ, KindFeaturedServices,
		KindServiceAreas, KindTestimonials, KindTeamMembers, KindBlogPosts,
	}
}

type Block interface {
	Kind() Kind
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (l Link) Empty() bool { return l.Label == "" || l.URL == "" }

type Hero struct {
	Heading         string   `json:"heading"`
	Subheading      string   `json:"subheading"`
	BackgroundImage MediaRef `json:"backgroundImage"`
	PrimaryCTA      Link     `json:"primaryCta"`
	SecondaryCTA    Link     `json:"secondaryCta"`
	ShowPhone       bool     `json:"showPhone"`
}

type CTA struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Button  Link   `json:"button"`
	Style   string `json:"style"`
}

// Content is a free-form rich text section. Body is markdown.
type Content struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQ renders its inline items, or the FAQ collection when Items is empty.
type FAQ struct {
	Heading  string    `json:"heading"`
	Items    []FAQItem `json:"items"`
	Category string    `json:"category"`
	Limit    int       `json:"limit"`
}

// FeaturedServices references services by id or slug. With no references it shows the
// services flagged as featured.
type FeaturedServices struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading"`
	Services   []string `json:"services"`
	Limit      int      `json:"limit"`
}

type ServiceAreas struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Limit      int    `json:"limit"`
}

type Testimonials struct {
	Heading string `json:"heading"`
	Service string `json:"service"`
	Limit   int    `json:"limit"`
}

type TeamMembers struct {
	Heading string `json:"heading"`
	Limit   int    `json:"limit"`
}

type BlogPosts struct {
	Heading  string `json:"heading"`
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

// Unknown carries a tag the site does not know how to render.
type Unknown struct {
	Tag string
}

func (Hero) Kind() Kind             { return KindHero }
func (CTA) Kind() Kind              { return KindCTA }
func (Content) Kind() Kind          { return KindContent }
func (FAQ) Kind() Kind              { return KindFAQ }
func (FeaturedServices) Kind() Kind { return KindFeaturedServices }
func (ServiceAreas) Kind() Kind     { return KindServiceAreas }
func (Testimonials) Kind() Kind     { return KindTestimonials }
func (TeamMembers) Kind() Kind      { return KindTeamMembers }
func (BlogPosts) Kind() Kind        { return KindBlogPosts }
func (u Unknown) Kind() Kind        { return Kind(u.Tag) }
