package pagesapi

import (
	"encoding/json"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/render"
	"appliance-site/internal/resolve"
)

func pageDTO(pr resolve.PageResult, theme design.Theme) PageDTO {
	p := pr.Page
	dto := PageDTO{
		Slug:   p.Slug,
		Title:  p.Title,
		Status: p.Status,
		Source: p.Source,
		Design: string(render.ThemeFor(p, render.Context{Theme: theme})),
		Static: pr.Kind == resolve.StaticFallback,
		Meta:   MetaDTO{Title: p.Meta.Title, Description: p.Meta.Description, Image: p.Meta.ImageURL},
		Blocks: make([]BlockDTO, 0, len(p.Layout)),
	}
	for i, b := range p.Layout {
		if _, unknown := b.(blocks.Unknown); unknown {
			continue
		}
		props, err := json.Marshal(b)
		if err != nil {
			props = json.RawMessage("{}")
		}
		dto.Blocks = append(dto.Blocks, BlockDTO{Type: string(b.Kind()), SortIndex: i, Props: props})
	}
	return dto
}

func serviceDTOs(items []content.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(items))
	for _, s := range items {
		features := s.Features
		if features == nil {
			features = []string{}
		}
		out = append(out, ServiceDTO{
			Slug:             s.Slug,
			Name:             s.Name,
			ShortDescription: s.ShortDescription,
			StartingPrice:    s.StartingPrice,
			ImageURL:         s.ImageURL,
			Features:         features,
			Featured:         s.Featured,
		})
	}
	return out
}

func postDTOs(items []content.BlogPost) []PostDTO {
	out := make([]PostDTO, 0, len(items))
	for _, p := range items {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		dto := PostDTO{
			Slug:           p.Slug,
			Title:          p.Title,
			Excerpt:        p.Excerpt,
			Author:         p.Author,
			Category:       p.Category,
			Tags:           tags,
			ReadingMinutes: p.ReadingMinutes,
			CoverImageURL:  p.CoverImageURL,
		}
		if !p.PublishedAt.IsZero() {
			dto.PublishedAt = p.PublishedAt.Format("2006-01-02")
		}
		out = append(out, dto)
	}
	return out
}
