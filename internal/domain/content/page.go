package content

import (
	"appliance-site/internal/domain/blocks"
	"appliance-site/internal/domain/design"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	SourcePayload = "payload"
	SourceSanity  = "sanity"
	SourceStatic  = "static"
)

type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Page is a resolved, source-independent page: an ordered layout plus SEO metadata.
type Page struct {
	Slug   string
	Title  string
	Status string
	Layout []blocks.Block
	Meta   Meta

	// Design is set only for static pages, which are bound to one theme.
	Design design.Theme
	Source string
}
