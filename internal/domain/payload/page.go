package payload

import (
	"encoding/json"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug   string `gorm:"not null;index:idx_pages_slug_status,priority:1" json:"slug"`
	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"not null;default:'draft';index:idx_pages_slug_status,priority:2" json:"status"`

	MetaTitle       string  `json:"meta_title,omitempty"`
	MetaDescription string  `json:"meta_description,omitempty"`
	MetaImageID     *string `gorm:"type:uuid" json:"meta_image_id,omitempty"`
	MetaImage       *Media  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"meta_image,omitempty"`

	Blocks []PageBlock `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"layout,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageBlock is one entry of a page layout. Fields holds the block payload exactly as
// Payload stored it (relations populated to depth 1).
type PageBlock struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	BlockType string          `gorm:"column:block_type;not null;index" json:"blockType"`
	BlockName string          `json:"blockName,omitempty"`
	Fields    json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"fields"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
