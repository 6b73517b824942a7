package payload

import "time"

// Media is a row of Payload's upload collection. URL is usually relative to the Payload server.
type Media struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	URL      string  `gorm:"not null" json:"url"`
	Alt      string  `json:"alt,omitempty"`
	Filename string  `json:"filename,omitempty"`
	Width    *int    `json:"width,omitempty"`
	Height   *int    `json:"height,omitempty"`
	WebpURL  *string `json:"webp_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Media) TableName() string { return "media" }
