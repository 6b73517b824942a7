// Package sanity holds the JSON shapes of documents returned by the Sanity query API.
// Only the adapter and the Sanity source may depend on it.
package sanity

import "encoding/json"

// Document types as named in the Sanity studio schema.
const (
	TypePage          = "page"
	TypeService       = "service"
	TypePost          = "post"
	TypeTestimonial   = "testimonial"
	TypeTeamMember    = "teamMember"
	TypeServiceArea   = "serviceArea"
	TypeBrand         = "brand"
	TypeCertification = "certification"
	TypeFAQ           = "faq"
	TypeSiteSettings  = "siteSettings"
)

// Span is an inline text run inside a portable text block.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// PortableTextNode is one top level node of a portable text array. Only nodes whose Type
// is "block" carry text; images and custom objects are other types.
type PortableTextNode struct {
	Type     string `json:"_type"`
	Key      string `json:"_key,omitempty"`
	Style    string `json:"style,omitempty"`
	ListItem string `json:"listItem,omitempty"`
	Children []Span `json:"children,omitempty"`
}

type Reference struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

// Image is an image field. Asset is either a bare reference or, when the query
// dereferences it, an asset document with a url.
type Image struct {
	Type  string `json:"_type,omitempty"`
	Asset *Asset `json:"asset,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

type Asset struct {
	Ref string `json:"_ref,omitempty"`
	ID  string `json:"_id,omitempty"`
	URL string `json:"url,omitempty"`
}

type Service struct {
	ID               string             `json:"_id"`
	Type             string             `json:"_type"`
	Title            string             `json:"title"`
	Slug             json.RawMessage    `json:"slug"`
	ShortDescription string             `json:"shortDescription"`
	Description      []PortableTextNode `json:"description"`
	Icon             string             `json:"icon"`
	Image            *Image             `json:"image"`
	PriceFrom        string             `json:"priceFrom"`
	Features         []string           `json:"features"`
	Featured         bool               `json:"featured"`
	Order            int                `json:"order"`
}

type Post struct {
	ID          string             `json:"_id"`
	Type        string             `json:"_type"`
	Title       string             `json:"title"`
	Slug        json.RawMessage    `json:"slug"`
	Excerpt     string             `json:"excerpt"`
	Body        []PortableTextNode `json:"body"`
	MainImage   *Image             `json:"mainImage"`
	Author      *Author            `json:"author"`
	Categories  []Category         `json:"categories"`
	Tags        []string           `json:"tags"`
	PublishedAt string             `json:"publishedAt"`
}

type Author struct {
	Name string `json:"name"`
}

type Category struct {
	Title string `json:"title"`
}

type Testimonial struct {
	ID       string    `json:"_id"`
	Type     string    `json:"_type"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Rating   float64   `json:"rating"`
	Text     string    `json:"text"`
	Service  *NamedRef `json:"service"`
	Date     string    `json:"date"`
}

// NamedRef is a dereferenced relation projected down to its title.
type NamedRef struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

type TeamMember struct {
	ID              string             `json:"_id"`
	Type            string             `json:"_type"`
	Name            string             `json:"name"`
	Slug            json.RawMessage    `json:"slug"`
	Role            string             `json:"role"`
	Bio             []PortableTextNode `json:"bio"`
	Image           *Image             `json:"image"`
	YearsExperience int                `json:"yearsExperience"`
	Certifications  []string           `json:"certifications"`
}

type ServiceArea struct {
	ID          string          `json:"_id"`
	Type        string          `json:"_type"`
	City        string          `json:"city"`
	Slug        json.RawMessage `json:"slug"`
	State       string          `json:"state"`
	Description string          `json:"description"`
	ZipCodes    []string        `json:"zipCodes"`
}

type Brand struct {
	ID          string          `json:"_id"`
	Type        string          `json:"_type"`
	Name        string          `json:"name"`
	Slug        json.RawMessage `json:"slug"`
	Logo        *Image          `json:"logo"`
	Description string          `json:"description"`
}

type Certification struct {
	ID          string `json:"_id"`
	Type        string `json:"_type"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Logo        *Image `json:"logo"`
	Description string `json:"description"`
}

type FAQ struct {
	ID       string             `json:"_id"`
	Type     string             `json:"_type"`
	Question string             `json:"question"`
	Answer   []PortableTextNode `json:"answer"`
	Category string             `json:"category"`
}

type SiteSettings struct {
	ID          string       `json:"_id"`
	Type        string       `json:"_type"`
	Title       string       `json:"title"`
	Tagline     string       `json:"tagline"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Address     string       `json:"address"`
	Hours       string       `json:"businessHours"`
	Logo        *Image       `json:"logo"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Page is a page-builder document. Each PageBuilder item is an object whose _type is the
// block tag and whose remaining keys are the block fields.
type Page struct {
	ID          string                       `json:"_id"`
	Type        string                       `json:"_type"`
	Title       string                       `json:"title"`
	Slug        json.RawMessage              `json:"slug"`
	PageBuilder []map[string]json.RawMessage `json:"pageBuilder"`
	SEO         *SEO                         `json:"seo"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OGImage         *Image `json:"ogImage"`
}
