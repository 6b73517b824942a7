package resolve

import (
	"context"
	"fmt"
	"strings"

	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/source"
)

// Detail pages have no CMS layout of their own. They are assembled from the entity so
// they go through the same block renderer as authored pages.

func (s *Service) ServicePage(ctx context.Context, slug string) PageResult {
	res := run(ctx, s, "service:"+slug, func(ctx context.Context, src source.Source) source.Result[content.Service] {
		return src.Service(ctx, slug)
	})
	if !res.Ok() {
		return PageResult{Kind: NotFound}
	}
	svc := res.Value

	body := strings.TrimSpace(svc.Description)
	if len(svc.Features) > 0 {
		var b strings.Builder
		b.WriteString(body)
		b.WriteString("\n\n")
		for _, f := range svc.Features {
			b.WriteString("- " + f + "\n")
		}
		body = strings.TrimSpace(b.String())
	}
	subheading := svc.ShortDescription
	if svc.StartingPrice != "" {
		subheading = strings.TrimSpace(subheading + " " + svc.StartingPrice + ".")
	}

	return PageResult{
		Kind: Found,
		Tier: res.Tier,
		Page: content.Page{
			Slug:   "services/" + svc.Slug,
			Title:  svc.Name,
			Status: content.StatusPublished,
			Source: res.Tier,
			Meta:   content.Meta{Title: svc.Name, Description: svc.ShortDescription, ImageURL: svc.ImageURL},
			Layout: []blocks.Block{
				blocks.Hero{
					Heading:         svc.Name,
					Subheading:      subheading,
					BackgroundImage: blocks.MediaRef{URL: svc.ImageURL, Alt: svc.Name},
					PrimaryCTA:      blocks.Link{Label: "Book a repair", URL: "/contact"},
					ShowPhone:       true,
				},
				blocks.Content{Heading: "About this service", Body: body},
				blocks.Testimonials{Heading: "Customer reviews", Service: svc.Name, Limit: blocks.DefaultTestimonialsLimit},
				blocks.CTA{
					Heading: "Schedule your " + strings.ToLower(svc.Name),
					Button:  blocks.Link{Label: "Book now", URL: "/contact"},
					Style:   "primary",
				},
			},
		},
	}
}

func (s *Service) PostPage(ctx context.Context, slug string) PageResult {
	res := run(ctx, s, "post:"+slug, func(ctx context.Context, src source.Source) source.Result[content.BlogPost] {
		return src.Post(ctx, slug)
	})
	if !res.Ok() {
		return PageResult{Kind: NotFound}
	}
	post := res.Value

	var byline []string
	if post.Author != "" {
		byline = append(byline, post.Author)
	}
	if !post.PublishedAt.IsZero() {
		byline = append(byline, post.PublishedAt.Format("January 2, 2006"))
	}
	if post.ReadingMinutes > 0 {
		byline = append(byline, fmt.Sprintf("%d min read", post.ReadingMinutes))
	}

	return PageResult{
		Kind: Found,
		Tier: res.Tier,
		Page: content.Page{
			Slug:   "blog/" + post.Slug,
			Title:  post.Title,
			Status: content.StatusPublished,
			Source: res.Tier,
			Meta:   content.Meta{Title: post.Title, Description: post.Excerpt, ImageURL: post.CoverImageURL},
			Layout: []blocks.Block{
				blocks.Hero{
					Heading:         post.Title,
					Subheading:      strings.Join(byline, " · "),
					BackgroundImage: blocks.MediaRef{URL: post.CoverImageURL, Alt: post.Title},
				},
				blocks.Content{Body: post.Body},
				blocks.BlogPosts{Heading: "More repair tips", Category: post.Category, Limit: blocks.DefaultBlogPostsLimit},
				blocks.CTA{
					Heading: "Still stuck?",
					Body:    "Our technicians can usually come the same day.",
					Button:  blocks.Link{Label: "Book a repair", URL: "/contact"},
					Style:   "secondary",
				},
			},
		},
	}
}

func (s *Service) AreaPage(ctx context.Context, slug string) PageResult {
	res := run(ctx, s, "service_area:"+slug, func(ctx context.Context, src source.Source) source.Result[content.ServiceArea] {
		return src.ServiceArea(ctx, slug)
	})
	if !res.Ok() {
		return PageResult{Kind: NotFound}
	}
	area := res.Value

	place := area.City
	if area.State != "" {
		place += ", " + area.State
	}
	body := area.Description
	if len(area.ZipCodes) > 0 {
		body = strings.TrimSpace(body + "\n\n**ZIP codes served:** " + strings.Join(area.ZipCodes, ", "))
	}
	title := "Appliance repair in " + place

	return PageResult{
		Kind: Found,
		Tier: res.Tier,
		Page: content.Page{
			Slug:   "service-areas/" + area.Slug,
			Title:  title,
			Status: content.StatusPublished,
			Source: res.Tier,
			Meta:   content.Meta{Title: title, Description: area.Description},
			Layout: []blocks.Block{
				blocks.Hero{Heading: title, ShowPhone: true},
				blocks.Content{Body: body},
				blocks.FeaturedServices{Heading: "Services in " + area.City, Limit: blocks.DefaultFeaturedServicesLimit},
				blocks.Testimonials{Heading: "Reviews from your neighbors", Limit: blocks.DefaultTestimonialsLimit},
				blocks.CTA{
					Heading: "Need a technician in " + area.City + "?",
					Button:  blocks.Link{Label: "Book a repair", URL: "/contact"},
					Style:   "primary",
				},
			},
		},
	}
}
