package payload

import (
	"encoding/json"
	"time"
)

// Collection names as Payload slugs them. They double as table names.
const (
	CollectionPages          = "pages"
	CollectionServices       = "services"
	CollectionPosts          = "posts"
	CollectionTestimonials   = "testimonials"
	CollectionTeamMembers    = "team_members"
	CollectionServiceAreas   = "service_areas"
	CollectionBrands         = "brands"
	CollectionCertifications = "certifications"
	CollectionFAQs           = "faqs"

	GlobalSettings = "settings"
)

type Service struct {
	ID               string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug             string          `gorm:"not null;uniqueIndex" json:"slug"`
	Title            string          `gorm:"not null" json:"title"`
	ShortDescription *string         `json:"short_description,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Icon             *string         `json:"icon,omitempty"`
	ImageID          *string         `gorm:"type:uuid" json:"image_id,omitempty"`
	Image            *Media          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"image,omitempty"`
	StartingPrice    *string         `json:"starting_price,omitempty"`
	Features         json.RawMessage `gorm:"type:jsonb" json:"features,omitempty"` // [{"feature": "..."}]
	Featured         bool            `gorm:"not null;default:false" json:"featured"`
	SortOrder        int             `gorm:"not null;default:0;index" json:"sort_order"`
	Status           string          `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Post struct {
	ID            string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug          string          `gorm:"not null;uniqueIndex" json:"slug"`
	Title         string          `gorm:"not null" json:"title"`
	Excerpt       *string         `json:"excerpt,omitempty"`
	Content       *string         `json:"content,omitempty"` // markdown
	CoverImageID  *string         `gorm:"type:uuid" json:"cover_image_id,omitempty"`
	CoverImage    *Media          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cover_image,omitempty"`
	Author        *string         `json:"author,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Tags          json.RawMessage `gorm:"type:jsonb" json:"tags,omitempty"` // [{"tag": "..."}]
	PublishedDate *time.Time      `json:"published_date,omitempty"`
	Status        string          `gorm:"not null;default:'draft';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID           string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName string     `gorm:"not null" json:"customer_name"`
	Location     *string    `json:"location,omitempty"`
	Rating       *int       `json:"rating,omitempty"`
	Quote        string     `gorm:"not null" json:"quote"`
	ServiceID    *string    `gorm:"type:uuid" json:"service_id,omitempty"`
	Service      *Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Status       string     `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeamMember struct {
	ID              string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug            string          `gorm:"not null;uniqueIndex" json:"slug"`
	Name            string          `gorm:"not null" json:"name"`
	Role            *string         `json:"role,omitempty"`
	Bio             *string         `json:"bio,omitempty"`
	PhotoID         *string         `gorm:"type:uuid" json:"photo_id,omitempty"`
	Photo           *Media          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"photo,omitempty"`
	YearsExperience *int            `json:"years_experience,omitempty"`
	Certifications  json.RawMessage `gorm:"type:jsonb" json:"certifications,omitempty"` // ["EPA 608", ...]
	SortOrder       int             `gorm:"not null;default:0;index" json:"sort_order"`
	Status          string          `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceArea struct {
	ID          string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string          `gorm:"not null;uniqueIndex" json:"slug"`
	City        string          `gorm:"not null" json:"city"`
	State       *string         `json:"state,omitempty"`
	Description *string         `json:"description,omitempty"`
	ZipCodes    json.RawMessage `gorm:"type:jsonb" json:"zip_codes,omitempty"` // ["90210", ...]
	SortOrder   int             `gorm:"not null;default:0;index" json:"sort_order"`
	Status      string          `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Brand struct {
	ID          string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string  `gorm:"not null;uniqueIndex" json:"slug"`
	Name        string  `gorm:"not null" json:"name"`
	LogoID      *string `gorm:"type:uuid" json:"logo_id,omitempty"`
	Logo        *Media  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"logo,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `gorm:"not null;default:0;index" json:"sort_order"`
	Status      string  `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Certification struct {
	ID          string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Issuer      *string `json:"issuer,omitempty"`
	LogoID      *string `gorm:"type:uuid" json:"logo_id,omitempty"`
	Logo        *Media  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"logo,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `gorm:"not null;default:0;index" json:"sort_order"`
	Status      string  `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQ struct {
	ID        string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Question  string  `gorm:"not null" json:"question"`
	Answer    *string `json:"answer,omitempty"`
	Category  *string `gorm:"index" json:"category,omitempty"`
	SortOrder int     `gorm:"not null;default:0;index" json:"sort_order"`
	Status    string  `gorm:"not null;default:'published';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FAQ) TableName() string { return CollectionFAQs }

// Settings is Payload's single "settings" global.
type Settings struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	SiteName string          `gorm:"not null" json:"site_name"`
	Tagline  *string         `json:"tagline,omitempty"`
	Phone    *string         `json:"phone,omitempty"`
	Email    *string         `json:"email,omitempty"`
	Address  *string         `json:"address,omitempty"`
	Hours    *string         `json:"hours,omitempty"`
	LogoID   *string         `gorm:"type:uuid" json:"logo_id,omitempty"`
	Logo     *Media          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"logo,omitempty"`
	Social   json.RawMessage `gorm:"type:jsonb" json:"social,omitempty"` // [{"platform": "...", "url": "..."}]

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Settings) TableName() string { return GlobalSettings }
