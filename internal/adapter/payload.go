package adapter

import (
	"encoding/json"
	"sort"
	"strings"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/payload"
)

// Payload adapts rows of the Payload Postgres schema. PublicURL is the Payload server
// origin used to make upload URLs absolute.
type Payload struct {
	PublicURL string
}

func (a Payload) Page(p payload.Page) content.Page {
	rows := make([]payload.PageBlock, len(p.Blocks))
	copy(rows, p.Blocks)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortIndex < rows[j].SortIndex })

	layout := make([]blocks.Block, 0, len(rows))
	for _, row := range rows {
		layout = append(layout, a.block(row))
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = content.TitleFromSlug(p.Slug)
	}
	metaTitle := strings.TrimSpace(p.MetaTitle)
	if metaTitle == "" {
		metaTitle = title
	}

	return content.Page{
		Slug:   p.Slug,
		Title:  title,
		Status: statusOr(p.Status, content.StatusDraft),
		Layout: layout,
		Meta: content.Meta{
			Title:       metaTitle,
			Description: strings.TrimSpace(p.MetaDescription),
			ImageURL:    MediaURL(a.PublicURL, p.MetaImage),
		},
		Source: content.SourcePayload,
	}
}

func (a Payload) block(row payload.PageBlock) blocks.Block {
	b := blocks.Decode(row.BlockType, row.Fields)
	if hero, ok := b.(blocks.Hero); ok {
		hero.BackgroundImage.URL = absoluteURL(a.PublicURL, hero.BackgroundImage.URL)
		return hero
	}
	return b
}

func (a Payload) Service(s payload.Service) content.Service {
	name := strings.TrimSpace(s.Title)
	if name == "" {
		name = content.TitleFromSlug(s.Slug)
	}
	return content.Service{
		ID:               s.ID,
		Slug:             s.Slug,
		Name:             name,
		ShortDescription: str(s.ShortDescription),
		Description:      str(s.Description),
		Icon:             str(s.Icon),
		ImageURL:         MediaURL(a.PublicURL, s.Image),
		StartingPrice:    str(s.StartingPrice),
		Features:         jsonStrings(s.Features, "feature"),
		Featured:         s.Featured,
		Order:            s.SortOrder,
	}
}

func (a Payload) Post(p payload.Post) content.BlogPost {
	post := content.BlogPost{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         strings.TrimSpace(p.Title),
		Excerpt:       str(p.Excerpt),
		Body:          str(p.Content),
		CoverImageURL: MediaURL(a.PublicURL, p.CoverImage),
		Author:        str(p.Author),
		Category:      str(p.Category),
		Tags:          jsonStrings(p.Tags, "tag"),
	}
	if p.PublishedDate != nil {
		post.PublishedAt = p.PublishedDate.UTC()
	}
	if post.Excerpt == "" {
		post.Excerpt = excerpt(post.Body)
	}
	post.ReadingMinutes = readingMinutes(post.Body)
	return post
}

func (a Payload) Testimonial(t payload.Testimonial) content.Testimonial {
	out := content.Testimonial{
		ID:       t.ID,
		Name:     strings.TrimSpace(t.CustomerName),
		Location: str(t.Location),
		Rating:   clampRating(intOr(t.Rating, 5)),
		Quote:    strings.TrimSpace(t.Quote),
	}
	if t.Service != nil {
		out.Service = strings.TrimSpace(t.Service.Title)
	}
	if t.Date != nil {
		out.Date = t.Date.UTC().Format("2006-01-02")
	}
	return out
}

func (a Payload) TeamMember(m payload.TeamMember) content.TeamMember {
	return content.TeamMember{
		ID:              m.ID,
		Slug:            m.Slug,
		Name:            strings.TrimSpace(m.Name),
		Role:            str(m.Role),
		Bio:             str(m.Bio),
		PhotoURL:        MediaURL(a.PublicURL, m.Photo),
		YearsExperience: intOr(m.YearsExperience, 0),
		Certifications:  jsonStrings(m.Certifications, "name"),
	}
}

func (a Payload) ServiceArea(s payload.ServiceArea) content.ServiceArea {
	return content.ServiceArea{
		ID:          s.ID,
		Slug:        s.Slug,
		City:        strings.TrimSpace(s.City),
		State:       str(s.State),
		Description: str(s.Description),
		ZipCodes:    jsonStrings(s.ZipCodes, "zip"),
	}
}

func (a Payload) Brand(b payload.Brand) content.Brand {
	return content.Brand{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        strings.TrimSpace(b.Name),
		LogoURL:     MediaURL(a.PublicURL, b.Logo),
		Description: str(b.Description),
	}
}

func (a Payload) Certification(c payload.Certification) content.Certification {
	return content.Certification{
		ID:          c.ID,
		Name:        strings.TrimSpace(c.Name),
		Issuer:      str(c.Issuer),
		LogoURL:     MediaURL(a.PublicURL, c.Logo),
		Description: str(c.Description),
	}
}

func (a Payload) FAQ(f payload.FAQ) content.FAQ {
	return content.FAQ{
		ID:       f.ID,
		Question: strings.TrimSpace(f.Question),
		Answer:   str(f.Answer),
		Category: str(f.Category),
	}
}

func (a Payload) Settings(s payload.Settings) content.Settings {
	return content.Settings{
		SiteName: strings.TrimSpace(s.SiteName),
		Tagline:  str(s.Tagline),
		Phone:    str(s.Phone),
		Email:    str(s.Email),
		Address:  str(s.Address),
		Hours:    str(s.Hours),
		LogoURL:  MediaURL(a.PublicURL, s.Logo),
		Social:   socialLinks(s.Social),
	}
}

func socialLinks(raw json.RawMessage) []content.SocialLink {
	out := []content.SocialLink{}
	if len(raw) == 0 {
		return out
	}
	var rows []content.SocialLink
	if err := json.Unmarshal(raw, &rows); err != nil {
		return out
	}
	for _, r := range rows {
		if strings.TrimSpace(r.URL) == "" {
			continue
		}
		out = append(out, content.SocialLink{Platform: strings.TrimSpace(r.Platform), URL: strings.TrimSpace(r.URL)})
	}
	return out
}

func statusOr(s, fallback string) string {
	switch s {
	case content.StatusDraft, content.StatusPublished:
		return s
	}
	return fallback
}
