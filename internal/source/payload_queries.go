package source

import (
	"appliance-site/internal/domain/payload"

	"gorm.io/gorm"
)

func publishedQuery(db *gorm.DB, model any) *gorm.DB {
	return db.Model(model).Where("status = ?", payload.StatusPublished)
}

// pageQuery selects a page by slug. In draft mode the draft row wins over the published one.
func pageQuery(db *gorm.DB, slug string, drafts bool) *gorm.DB {
	tx := db.Model(&payload.Page{}).Where("slug = ?", slug)
	if !drafts {
		return tx.Where("status = ?", payload.StatusPublished)
	}
	return tx.Where("status IN ?", []string{payload.StatusDraft, payload.StatusPublished}).
		Order("CASE WHEN status = 'draft' THEN 0 ELSE 1 END").
		Order("updated_at DESC")
}

// servicesQuery lists published services. Refs select specific rows and are reordered
// and limited by the caller, so they bypass the featured filter and the SQL limit.
func servicesQuery(db *gorm.DB, q Query) *gorm.DB {
	tx := publishedQuery(db, &payload.Service{}).Order("sort_order ASC, title ASC")
	if len(q.Refs) > 0 {
		return tx.Where("slug IN ? OR id::text IN ?", q.Refs, q.Refs)
	}
	if q.Featured {
		tx = tx.Where("featured = true")
	}
	return limited(tx, q)
}

func postsQuery(db *gorm.DB, q Query) *gorm.DB {
	tx := publishedQuery(db, &payload.Post{}).Order("published_date DESC NULLS LAST")
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	return limited(tx, q)
}

// testimonialsQuery filters by service through a subquery, matching the service title or slug.
func testimonialsQuery(db *gorm.DB, q Query) *gorm.DB {
	tx := publishedQuery(db, &payload.Testimonial{}).Order("date DESC NULLS LAST, created_at DESC")
	if q.Service != "" {
		services := db.Model(&payload.Service{}).Select("id").Where("title = ? OR slug = ?", q.Service, q.Service)
		tx = tx.Where("service_id IN (?)", services)
	}
	return limited(tx, q)
}

func limited(tx *gorm.DB, q Query) *gorm.DB {
	if q.Limit > 0 {
		return tx.Limit(q.Limit)
	}
	return tx
}
