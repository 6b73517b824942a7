package pagesapi

import "encoding/json"

type BlockDTO struct {
	Type      string          `json:"type"`
	SortIndex int             `json:"sortIndex"`
	Props     json.RawMessage `json:"props"`
}

type MetaDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type PageDTO struct {
	Slug   string     `json:"slug"`
	Title  string     `json:"title"`
	Status string     `json:"status"`
	Source string     `json:"source"`
	Design string     `json:"design"`
	Static bool       `json:"static"`
	Meta   MetaDTO    `json:"meta"`
	Blocks []BlockDTO `json:"blocks"`
}

type ServiceDTO struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	StartingPrice    string   `json:"startingPrice,omitempty"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	Features         []string `json:"features"`
	Featured         bool     `json:"featured"`
}

type PostDTO struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt"`
	Author         string   `json:"author,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags"`
	PublishedAt    string   `json:"publishedAt,omitempty"`
	ReadingMinutes int      `json:"readingMinutes"`
	CoverImageURL  string   `json:"coverImageUrl,omitempty"`
}

type GetPageResponse struct {
	Page PageDTO `json:"page"`
}

type GetServicesResponse struct {
	Services []ServiceDTO `json:"services"`
	Source   string       `json:"source,omitempty"`
}

type GetPostsResponse struct {
	Posts []PostDTO `json:"posts"`
}

type HealthResponse struct {
	Status string   `json:"status"`
	Tiers  []string `json:"tiers"`
	Design string   `json:"design"`
}
