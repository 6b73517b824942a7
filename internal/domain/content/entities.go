package content

import "time"

type Service struct {
	ID               string   `json:"id" yaml:"id"`
	Slug             string   `json:"slug" yaml:"slug"`
	Name             string   `json:"name" yaml:"name"`
	ShortDescription string   `json:"shortDescription" yaml:"shortDescription"`
	Description      string   `json:"description" yaml:"description"`
	Icon             string   `json:"icon" yaml:"icon"`
	ImageURL         string   `json:"imageUrl" yaml:"imageUrl"`
	StartingPrice    string   `json:"startingPrice" yaml:"startingPrice"`
	Features         []string `json:"features" yaml:"features"`
	Featured         bool     `json:"featured" yaml:"featured"`
	Order            int      `json:"order" yaml:"order"`
}

type BlogPost struct {
	ID             string    `json:"id" yaml:"id"`
	Slug           string    `json:"slug" yaml:"slug"`
	Title          string    `json:"title" yaml:"title"`
	Excerpt        string    `json:"excerpt" yaml:"excerpt"`
	Body           string    `json:"body" yaml:"body"`
	CoverImageURL  string    `json:"coverImageUrl" yaml:"coverImageUrl"`
	Author         string    `json:"author" yaml:"author"`
	Category       string    `json:"category" yaml:"category"`
	Tags           []string  `json:"tags" yaml:"tags"`
	PublishedAt    time.Time `json:"publishedAt" yaml:"publishedAt"`
	ReadingMinutes int       `json:"readingMinutes" yaml:"readingMinutes"`
}

type Testimonial struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Rating   int    `json:"rating" yaml:"rating"`
	Quote    string `json:"quote" yaml:"quote"`
	// Service is the display name of the related service, not an id.
	Service string `json:"service" yaml:"service"`
	Date    string `json:"date" yaml:"date"`
}

type TeamMember struct {
	ID              string   `json:"id" yaml:"id"`
	Slug            string   `json:"slug" yaml:"slug"`
	Name            string   `json:"name" yaml:"name"`
	Role            string   `json:"role" yaml:"role"`
	Bio             string   `json:"bio" yaml:"bio"`
	PhotoURL        string   `json:"photoUrl" yaml:"photoUrl"`
	YearsExperience int      `json:"yearsExperience" yaml:"yearsExperience"`
	Certifications  []string `json:"certifications" yaml:"certifications"`
}

type ServiceArea struct {
	ID          string   `json:"id" yaml:"id"`
	Slug        string   `json:"slug" yaml:"slug"`
	City        string   `json:"city" yaml:"city"`
	State       string   `json:"state" yaml:"state"`
	Description string   `json:"description" yaml:"description"`
	ZipCodes    []string `json:"zipCodes" yaml:"zipCodes"`
}

type Brand struct {
	ID          string `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug"`
	Name        string `json:"name" yaml:"name"`
	LogoURL     string `json:"logoUrl" yaml:"logoUrl"`
	Description string `json:"description" yaml:"description"`
}

type Certification struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	LogoURL     string `json:"logoUrl" yaml:"logoUrl"`
	Description string `json:"description" yaml:"description"`
}

type FAQ struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
}

type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// Settings is the single global document shared by every page.
type Settings struct {
	SiteName string       `json:"siteName" yaml:"siteName"`
	Tagline  string       `json:"tagline" yaml:"tagline"`
	Phone    string       `json:"phone" yaml:"phone"`
	Email    string       `json:"email" yaml:"email"`
	Address  string       `json:"address" yaml:"address"`
	Hours    string       `json:"hours" yaml:"hours"`
	LogoURL  string       `json:"logoUrl" yaml:"logoUrl"`
	Social   []SocialLink `json:"social" yaml:"social"`
}
