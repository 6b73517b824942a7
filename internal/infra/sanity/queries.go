package sanity

import (
	"fmt"
	"strings"

	sanitydoc "appliance-site/internal/domain/sanity"
	"appliance-site/internal/source"
)

const imageFields = `{..., asset->{_id, url}}`

var projections = map[string]string{
	sanitydoc.TypePage:          `{..., seo{..., ogImage` + imageFields + `}, pageBuilder[]{..., backgroundImage` + imageFields + `, services[]->{_id, slug}}}`,
	sanitydoc.TypeService:       `{..., image` + imageFields + `}`,
	sanitydoc.TypePost:          `{..., mainImage` + imageFields + `, author->{name}, categories[]->{title}}`,
	sanitydoc.TypeTestimonial:   `{..., service->{title, name}}`,
	sanitydoc.TypeTeamMember:    `{..., image` + imageFields + `}`,
	sanitydoc.TypeBrand:         `{..., logo` + imageFields + `}`,
	sanitydoc.TypeCertification: `{..., logo` + imageFields + `}`,
	sanitydoc.TypeSiteSettings:  `{..., logo` + imageFields + `}`,
}

var orderings = map[string]string{
	sanitydoc.TypeService:       "order(order asc, title asc)",
	sanitydoc.TypePost:          "order(publishedAt desc)",
	sanitydoc.TypeTestimonial:   "order(date desc)",
	sanitydoc.TypeTeamMember:    "order(order asc, name asc)",
	sanitydoc.TypeServiceArea:   "order(city asc)",
	sanitydoc.TypeBrand:         "order(name asc)",
	sanitydoc.TypeCertification: "order(name asc)",
	sanitydoc.TypeFAQ:           "order(order asc)",
}

func projection(docType string) string {
	return projections[docType]
}

// buildQuery assembles the GROQ for a collection read. Values always travel as
// parameters, never spliced into the query text.
func buildQuery(docType string, q source.Query, slug string) (string, map[string]any) {
	filters := []string{`_type == $type`, `!(_id in path("drafts.**"))`}
	params := map[string]any{"type": docType}

	if slug != "" {
		filters = append(filters, `slug.current == $slug`)
		params["slug"] = slug
	}
	if len(q.Refs) > 0 {
		filters = append(filters, `(_id in $refs || slug.current in $refs)`)
		params["refs"] = q.Refs
	}
	if q.Featured && len(q.Refs) == 0 {
		filters = append(filters, `featured == true`)
	}
	if q.Category != "" {
		switch docType {
		case sanitydoc.TypePost:
			filters = append(filters, `$category in categories[]->title`)
		default:
			filters = append(filters, `category == $category`)
		}
		params["category"] = q.Category
	}
	if q.Service != "" {
		filters = append(filters, `(service->title == $service || service->slug.current == $service)`)
		params["service"] = q.Service
	}

	groq := "*[" + strings.Join(filters, " && ") + "]"
	if o, ok := orderings[docType]; ok {
		groq += " | " + o
	}
	switch {
	case slug != "":
		groq += "[0...1]"
	case q.Limit > 0 && len(q.Refs) == 0:
		groq += fmt.Sprintf("[0...%d]", q.Limit)
	}
	return groq + projection(docType), params
}
