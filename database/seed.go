package database

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/payload"
	"appliance-site/internal/source"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrAlreadySeeded is returned when the pages table is not empty.
var ErrAlreadySeeded = errors.New("database already has pages")

// SeedSource is the content copied into an empty database. The static provider is one.
type SeedSource interface {
	source.Source
	Slugs() []string
}

type SeedReport struct {
	Pages    int
	Blocks   int
	Entities int
}

// Seed copies every page and collection from src into the Payload tables in a single
// transaction. Pages are created as drafts unless publish is set.
func Seed(ctx context.Context, db *gorm.DB, src SeedSource, publish bool) (SeedReport, error) {
	plan, err := planSeed(ctx, src, publish)
	if err != nil {
		return SeedReport{}, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// prevent duplicates
		var count int64
		if err := tx.Model(&payload.Page{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySeeded
		}
		for _, row := range plan.rows {
			if err := tx.Create(row).Error; err != nil {
				return errors.Wrapf(err, "insert %T", row)
			}
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}
	return plan.report, nil
}

// seedPlan is the ordered list of rows to insert: pages before their blocks, services
// before the testimonials that reference them.
type seedPlan struct {
	rows   []any
	report SeedReport
}

func (p *seedPlan) add(row any) { p.rows = append(p.rows, row) }

func planSeed(ctx context.Context, src SeedSource, publish bool) (seedPlan, error) {
	var plan seedPlan
	pageStatus := payload.StatusDraft
	if publish {
		pageStatus = payload.StatusPublished
	}

	for _, slug := range src.Slugs() {
		res := src.Page(ctx, slug, false)
		if !res.Ok() {
			continue
		}
		if err := plan.page(res.Value, pageStatus); err != nil {
			return plan, errors.Wrapf(err, "page %s", slug)
		}
	}

	before := len(plan.rows)
	plan.collections(ctx, src)
	plan.report.Entities = len(plan.rows) - before
	return plan, nil
}

func (p *seedPlan) page(pg content.Page, status string) error {
	row := &payload.Page{
		ID:              uuid.NewString(),
		Slug:            pg.Slug,
		Title:           pg.Title,
		Status:          status,
		MetaTitle:       pg.Meta.Title,
		MetaDescription: pg.Meta.Description,
	}
	blockRows := make([]any, 0, len(pg.Layout))
	for i, b := range pg.Layout {
		fields, err := json.Marshal(b)
		if err != nil {
			return err
		}
		blockRows = append(blockRows, &payload.PageBlock{
			ID:        uuid.NewString(),
			PageID:    row.ID,
			SortIndex: i,
			BlockType: string(b.Kind()),
			Fields:    fields,
		})
	}
	p.add(row)
	p.rows = append(p.rows, blockRows...)
	p.report.Pages++
	p.report.Blocks += len(blockRows)
	return nil
}

func (p *seedPlan) collections(ctx context.Context, src source.Source) {
	all := source.Query{}

	if res := src.Settings(ctx); res.Ok() {
		s := res.Value
		p.add(&payload.Settings{
			SiteName: s.SiteName,
			Tagline:  ptr(s.Tagline),
			Phone:    ptr(s.Phone),
			Email:    ptr(s.Email),
			Address:  ptr(s.Address),
			Hours:    ptr(s.Hours),
			Social:   rawJSON(s.Social),
		})
	}

	serviceIDs := map[string]string{}
	for i, s := range src.Services(ctx, all).Value {
		id := uuid.NewString()
		serviceIDs[strings.ToLower(s.Name)] = id
		serviceIDs[strings.ToLower(s.Slug)] = id
		features := make([]map[string]string, 0, len(s.Features))
		for _, f := range s.Features {
			features = append(features, map[string]string{"feature": f})
		}
		p.add(&payload.Service{
			ID:               id,
			Slug:             s.Slug,
			Title:            s.Name,
			ShortDescription: ptr(s.ShortDescription),
			Description:      ptr(s.Description),
			Icon:             ptr(s.Icon),
			StartingPrice:    ptr(s.StartingPrice),
			Features:         rawJSON(features),
			Featured:         s.Featured,
			SortOrder:        i,
			Status:           payload.StatusPublished,
		})
	}

	for _, post := range src.Posts(ctx, all).Value {
		tags := make([]map[string]string, 0, len(post.Tags))
		for _, t := range post.Tags {
			tags = append(tags, map[string]string{"tag": t})
		}
		var published *time.Time
		if !post.PublishedAt.IsZero() {
			at := post.PublishedAt
			published = &at
		}
		p.add(&payload.Post{
			Slug:          post.Slug,
			Title:         post.Title,
			Excerpt:       ptr(post.Excerpt),
			Content:       ptr(post.Body),
			Author:        ptr(post.Author),
			Category:      ptr(post.Category),
			Tags:          rawJSON(tags),
			PublishedDate: published,
			Status:        payload.StatusPublished,
		})
	}

	for _, t := range src.Testimonials(ctx, all).Value {
		rating := t.Rating
		row := &payload.Testimonial{
			CustomerName: t.Name,
			Location:     ptr(t.Location),
			Rating:       &rating,
			Quote:        t.Quote,
			Status:       payload.StatusPublished,
		}
		if id, ok := serviceIDs[strings.ToLower(t.Service)]; ok {
			row.ServiceID = &id
		}
		if d, err := time.Parse("2006-01-02", t.Date); err == nil {
			row.Date = &d
		}
		p.add(row)
	}

	for i, m := range src.TeamMembers(ctx, all).Value {
		years := m.YearsExperience
		p.add(&payload.TeamMember{
			Slug:            m.Slug,
			Name:            m.Name,
			Role:            ptr(m.Role),
			Bio:             ptr(m.Bio),
			YearsExperience: &years,
			Certifications:  rawJSON(m.Certifications),
			SortOrder:       i,
			Status:          payload.StatusPublished,
		})
	}

	for i, a := range src.ServiceAreas(ctx, all).Value {
		p.add(&payload.ServiceArea{
			Slug:        a.Slug,
			City:        a.City,
			State:       ptr(a.State),
			Description: ptr(a.Description),
			ZipCodes:    rawJSON(a.ZipCodes),
			SortOrder:   i,
			Status:      payload.StatusPublished,
		})
	}

	for i, b := range src.Brands(ctx, all).Value {
		p.add(&payload.Brand{
			Slug:        b.Slug,
			Name:        b.Name,
			Description: ptr(b.Description),
			SortOrder:   i,
			Status:      payload.StatusPublished,
		})
	}

	for i, c := range src.Certifications(ctx, all).Value {
		p.add(&payload.Certification{
			Name:        c.Name,
			Issuer:      ptr(c.Issuer),
			Description: ptr(c.Description),
			SortOrder:   i,
			Status:      payload.StatusPublished,
		})
	}

	for i, f := range src.FAQs(ctx, all).Value {
		p.add(&payload.FAQ{
			Question:  f.Question,
			Answer:    ptr(f.Answer),
			Category:  ptr(f.Category),
			SortOrder: i,
			Status:    payload.StatusPublished,
		})
	}
}

// ptr maps "" to NULL, matching how Payload stores an untouched optional field.
func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func rawJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
