package source

import (
	"context"

	"appliance-site/internal/adapter"
	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/payload"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Payload reads the PayloadCMS Postgres tables. A nil db makes every call Unavailable.
type Payload struct {
	db    *gorm.DB
	adapt adapter.Payload
}

func NewPayload(db *gorm.DB, publicURL string) *Payload {
	return &Payload{db: db, adapt: adapter.Payload{PublicURL: publicURL}}
}

func (p *Payload) Name() string { return content.SourcePayload }

func (p *Payload) conn(ctx context.Context) (*gorm.DB, error) {
	if p == nil || p.db == nil {
		return nil, errors.Wrap(ErrUnavailable, "payload: no database")
	}
	return p.db.WithContext(ctx), nil
}

// classify maps gorm errors onto the source taxonomy.
func classify(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, "payload: "+what)
	}
	return errors.Wrap(ErrUnavailable, "payload: "+what+": "+err.Error())
}

func (p *Payload) Page(ctx context.Context, slug string, drafts bool) Result[content.Page] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[content.Page](err)
	}

	var row payload.Page
	err = pageQuery(db, slug, drafts).
		Preload("MetaImage").
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		First(&row).Error
	if err != nil {
		return FromError(content.Page{}, classify(err, "page "+slug))
	}
	return Found(p.adapt.Page(row))
}

func (p *Payload) Settings(ctx context.Context) Result[content.Settings] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[content.Settings](err)
	}
	var row payload.Settings
	if err := db.Preload("Logo").Order("id ASC").First(&row).Error; err != nil {
		return FromError(content.Settings{}, classify(err, "settings"))
	}
	return Found(p.adapt.Settings(row))
}

func (p *Payload) Services(ctx context.Context, q Query) Result[[]content.Service] {
	return FeaturedOrAll(q, func(q Query) Result[[]content.Service] { return p.services(ctx, q) })
}

func (p *Payload) services(ctx context.Context, q Query) Result[[]content.Service] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.Service](err)
	}
	var rows []payload.Service
	if err := servicesQuery(db, q).Preload("Image").Find(&rows).Error; err != nil {
		return Down[[]content.Service](classify(err, "services"))
	}
	out := adapter.Map(rows, p.adapt.Service)
	out = PickRefs(out, q.Refs, func(s content.Service) []string { return []string{s.ID, s.Slug} })
	return List(Limit(out, q), nil)
}

func (p *Payload) Service(ctx context.Context, slug string) Result[content.Service] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[content.Service](err)
	}
	var row payload.Service
	if err := publishedQuery(db, &payload.Service{}).Preload("Image").Where("slug = ?", slug).First(&row).Error; err != nil {
		return FromError(content.Service{}, classify(err, "service "+slug))
	}
	return Found(p.adapt.Service(row))
}

func (p *Payload) Posts(ctx context.Context, q Query) Result[[]content.BlogPost] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.BlogPost](err)
	}
	var rows []payload.Post
	if err := postsQuery(db, q).Preload("CoverImage").Find(&rows).Error; err != nil {
		return Down[[]content.BlogPost](classify(err, "posts"))
	}
	return List(adapter.Map(rows, p.adapt.Post), nil)
}

func (p *Payload) Post(ctx context.Context, slug string) Result[content.BlogPost] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[content.BlogPost](err)
	}
	var row payload.Post
	if err := publishedQuery(db, &payload.Post{}).Preload("CoverImage").Where("slug = ?", slug).First(&row).Error; err != nil {
		return FromError(content.BlogPost{}, classify(err, "post "+slug))
	}
	return Found(p.adapt.Post(row))
}

func (p *Payload) Testimonials(ctx context.Context, q Query) Result[[]content.Testimonial] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.Testimonial](err)
	}
	var rows []payload.Testimonial
	if err := testimonialsQuery(db, q).Preload("Service").Find(&rows).Error; err != nil {
		return Down[[]content.Testimonial](classify(err, "testimonials"))
	}
	return List(adapter.Map(rows, p.adapt.Testimonial), nil)
}

func (p *Payload) TeamMembers(ctx context.Context, q Query) Result[[]content.TeamMember] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.TeamMember](err)
	}
	var rows []payload.TeamMember
	tx := publishedQuery(db, &payload.TeamMember{}).Preload("Photo").Order("sort_order ASC, name ASC")
	if err := limited(tx, q).Find(&rows).Error; err != nil {
		return Down[[]content.TeamMember](classify(err, "team members"))
	}
	return List(adapter.Map(rows, p.adapt.TeamMember), nil)
}

func (p *Payload) ServiceAreas(ctx context.Context, q Query) Result[[]content.ServiceArea] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.ServiceArea](err)
	}
	var rows []payload.ServiceArea
	tx := publishedQuery(db, &payload.ServiceArea{}).Order("sort_order ASC, city ASC")
	if err := limited(tx, q).Find(&rows).Error; err != nil {
		return Down[[]content.ServiceArea](classify(err, "service areas"))
	}
	return List(adapter.Map(rows, p.adapt.ServiceArea), nil)
}

func (p *Payload) ServiceArea(ctx context.Context, slug string) Result[content.ServiceArea] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[content.ServiceArea](err)
	}
	var row payload.ServiceArea
	if err := publishedQuery(db, &payload.ServiceArea{}).Where("slug = ?", slug).First(&row).Error; err != nil {
		return FromError(content.ServiceArea{}, classify(err, "service area "+slug))
	}
	return Found(p.adapt.ServiceArea(row))
}

func (p *Payload) Brands(ctx context.Context, q Query) Result[[]content.Brand] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.Brand](err)
	}
	var rows []payload.Brand
	tx := publishedQuery(db, &payload.Brand{}).Preload("Logo").Order("sort_order ASC, name ASC")
	if err := limited(tx, q).Find(&rows).Error; err != nil {
		return Down[[]content.Brand](classify(err, "brands"))
	}
	return List(adapter.Map(rows, p.adapt.Brand), nil)
}

func (p *Payload) Certifications(ctx context.Context, q Query) Result[[]content.Certification] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.Certification](err)
	}
	var rows []payload.Certification
	tx := publishedQuery(db, &payload.Certification{}).Preload("Logo").Order("sort_order ASC, name ASC")
	if err := limited(tx, q).Find(&rows).Error; err != nil {
		return Down[[]content.Certification](classify(err, "certifications"))
	}
	return List(adapter.Map(rows, p.adapt.Certification), nil)
}

func (p *Payload) FAQs(ctx context.Context, q Query) Result[[]content.FAQ] {
	db, err := p.conn(ctx)
	if err != nil {
		return Down[[]content.FAQ](err)
	}
	var rows []payload.FAQ
	tx := publishedQuery(db, &payload.FAQ{}).Order("sort_order ASC")
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if err := limited(tx, q).Find(&rows).Error; err != nil {
		return Down[[]content.FAQ](classify(err, "faqs"))
	}
	return List(adapter.Map(rows, p.adapt.FAQ), nil)
}
