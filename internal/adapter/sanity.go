package adapter

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/sanity"
)

// Sanity adapts documents from the Sanity query API. Images resolves asset references.
type Sanity struct {
	Images ImageURLBuilder
}

func (a Sanity) Page(p sanity.Page) content.Page {
	layout := make([]blocks.Block, 0, len(p.PageBuilder))
	for _, item := range p.PageBuilder {
		layout = append(layout, a.block(item))
	}

	slug := Slug(p.Slug)
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = content.TitleFromSlug(slug)
	}
	page := content.Page{
		Slug:   slug,
		Title:  title,
		Status: content.StatusPublished,
		Layout: layout,
		Meta:   content.Meta{Title: title},
		Source: content.SourceSanity,
	}
	if strings.HasPrefix(p.ID, "drafts.") {
		page.Status = content.StatusDraft
	}
	if p.SEO != nil {
		if t := strings.TrimSpace(p.SEO.MetaTitle); t != "" {
			page.Meta.Title = t
		}
		page.Meta.Description = strings.TrimSpace(p.SEO.MetaDescription)
		page.Meta.ImageURL = ImageURL(a.Images, p.SEO.OGImage)
	}
	return page
}

// block turns one pageBuilder object into a layout block. Sanity keeps the fields inline
// next to _type, and a few fields need translating before the shared decoder sees them.
func (a Sanity) block(item map[string]json.RawMessage) blocks.Block {
	var tag string
	_ = json.Unmarshal(item["_type"], &tag)

	fields := make(map[string]json.RawMessage, len(item))
	for k, v := range item {
		if strings.HasPrefix(k, "_") {
			continue
		}
		fields[k] = v
	}

	kind, _ := blocks.ParseKind(tag)
	switch kind {
	case blocks.KindContent:
		var nodes []sanity.PortableTextNode
		if err := json.Unmarshal(fields["body"], &nodes); err == nil {
			fields["body"] = mustJSON(Markdown(nodes))
		}
	case blocks.KindHero:
		var img sanity.Image
		if err := json.Unmarshal(fields["backgroundImage"], &img); err == nil && img.Asset != nil {
			fields["backgroundImage"] = mustJSON(blocks.MediaRef{URL: ImageURL(a.Images, &img), Alt: img.Alt})
		}
	case blocks.KindFAQ:
		fields["items"] = a.faqItems(fields["items"])
	case blocks.KindFeaturedServices:
		fields["services"] = serviceRefs(fields["services"])
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return blocks.Decode(tag, nil)
	}
	return blocks.Decode(tag, raw)
}

// faqItems accepts answers either as a string or as portable text.
func (a Sanity) faqItems(raw json.RawMessage) json.RawMessage {
	var items []struct {
		Question string          `json:"question"`
		Answer   json.RawMessage `json:"answer"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return raw
	}
	out := make([]blocks.FAQItem, 0, len(items))
	for _, it := range items {
		out = append(out, blocks.FAQItem{Question: it.Question, Answer: textField(it.Answer)})
	}
	return mustJSON(out)
}

// serviceRefs flattens references ({_ref}) or dereferenced services ({slug}) to strings.
func serviceRefs(raw json.RawMessage) json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return raw
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var ref struct {
			Ref  string          `json:"_ref"`
			Slug json.RawMessage `json:"slug"`
		}
		var s string
		switch {
		case json.Unmarshal(it, &s) == nil:
		case json.Unmarshal(it, &ref) == nil:
			s = Slug(ref.Slug)
			if s == "" {
				s = ref.Ref
			}
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return mustJSON(out)
}

func textField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nodes []sanity.PortableTextNode
	if err := json.Unmarshal(raw, &nodes); err == nil {
		return PlainText(nodes)
	}
	return ""
}

func (a Sanity) Service(s sanity.Service) content.Service {
	slug := Slug(s.Slug)
	name := strings.TrimSpace(s.Title)
	if name == "" {
		name = content.TitleFromSlug(slug)
	}
	return content.Service{
		ID:               s.ID,
		Slug:             slug,
		Name:             name,
		ShortDescription: strings.TrimSpace(s.ShortDescription),
		Description:      PlainText(s.Description),
		Icon:             strings.TrimSpace(s.Icon),
		ImageURL:         ImageURL(a.Images, s.Image),
		StartingPrice:    strings.TrimSpace(s.PriceFrom),
		Features:         cleanStrings(s.Features),
		Featured:         s.Featured,
		Order:            s.Order,
	}
}

func (a Sanity) Post(p sanity.Post) content.BlogPost {
	post := content.BlogPost{
		ID:            p.ID,
		Slug:          Slug(p.Slug),
		Title:         strings.TrimSpace(p.Title),
		Excerpt:       strings.TrimSpace(p.Excerpt),
		Body:          Markdown(p.Body),
		CoverImageURL: ImageURL(a.Images, p.MainImage),
		Tags:          cleanStrings(p.Tags),
		PublishedAt:   parseTime(p.PublishedAt),
	}
	if p.Author != nil {
		post.Author = strings.TrimSpace(p.Author.Name)
	}
	if len(p.Categories) > 0 {
		post.Category = strings.TrimSpace(p.Categories[0].Title)
	}
	if post.Excerpt == "" {
		post.Excerpt = excerpt(PlainText(p.Body))
	}
	post.ReadingMinutes = readingMinutes(post.Body)
	return post
}

func (a Sanity) Testimonial(t sanity.Testimonial) content.Testimonial {
	out := content.Testimonial{
		ID:       t.ID,
		Name:     strings.TrimSpace(t.Name),
		Location: strings.TrimSpace(t.Location),
		Rating:   5,
		Quote:    strings.TrimSpace(t.Text),
		Date:     strings.TrimSpace(t.Date),
	}
	if t.Rating > 0 {
		out.Rating = clampRating(int(math.Round(t.Rating)))
	}
	if t.Service != nil {
		out.Service = strings.TrimSpace(t.Service.Title)
		if out.Service == "" {
			out.Service = strings.TrimSpace(t.Service.Name)
		}
	}
	return out
}

func (a Sanity) TeamMember(m sanity.TeamMember) content.TeamMember {
	return content.TeamMember{
		ID:              m.ID,
		Slug:            Slug(m.Slug),
		Name:            strings.TrimSpace(m.Name),
		Role:            strings.TrimSpace(m.Role),
		Bio:             PlainText(m.Bio),
		PhotoURL:        ImageURL(a.Images, m.Image),
		YearsExperience: m.YearsExperience,
		Certifications:  cleanStrings(m.Certifications),
	}
}

func (a Sanity) ServiceArea(s sanity.ServiceArea) content.ServiceArea {
	return content.ServiceArea{
		ID:          s.ID,
		Slug:        Slug(s.Slug),
		City:        strings.TrimSpace(s.City),
		State:       strings.TrimSpace(s.State),
		Description: strings.TrimSpace(s.Description),
		ZipCodes:    cleanStrings(s.ZipCodes),
	}
}

func (a Sanity) Brand(b sanity.Brand) content.Brand {
	slug := Slug(b.Slug)
	if slug == "" {
		slug = content.MakeSlug(b.Name)
	}
	return content.Brand{
		ID:          b.ID,
		Slug:        slug,
		Name:        strings.TrimSpace(b.Name),
		LogoURL:     ImageURL(a.Images, b.Logo),
		Description: strings.TrimSpace(b.Description),
	}
}

func (a Sanity) Certification(c sanity.Certification) content.Certification {
	return content.Certification{
		ID:          c.ID,
		Name:        strings.TrimSpace(c.Name),
		Issuer:      strings.TrimSpace(c.Issuer),
		LogoURL:     ImageURL(a.Images, c.Logo),
		Description: strings.TrimSpace(c.Description),
	}
}

func (a Sanity) FAQ(f sanity.FAQ) content.FAQ {
	return content.FAQ{
		ID:       f.ID,
		Question: strings.TrimSpace(f.Question),
		Answer:   PlainText(f.Answer),
		Category: strings.TrimSpace(f.Category),
	}
}

func (a Sanity) Settings(s sanity.SiteSettings) content.Settings {
	out := content.Settings{
		SiteName: strings.TrimSpace(s.Title),
		Tagline:  strings.TrimSpace(s.Tagline),
		Phone:    strings.TrimSpace(s.Phone),
		Email:    strings.TrimSpace(s.Email),
		Address:  strings.TrimSpace(s.Address),
		Hours:    strings.TrimSpace(s.Hours),
		LogoURL:  ImageURL(a.Images, s.Logo),
		Social:   make([]content.SocialLink, 0, len(s.SocialLinks)),
	}
	for _, l := range s.SocialLinks {
		if strings.TrimSpace(l.URL) == "" {
			continue
		}
		out.Social = append(out.Social, content.SocialLink{Platform: strings.TrimSpace(l.Platform), URL: strings.TrimSpace(l.URL)})
	}
	return out
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}
