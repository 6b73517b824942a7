package content

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe slug.
// Example: "Dryer Repair & Service" -> "dryer-repair-service"
func MakeSlug(s string) string {
	base := strings.ToLower(strings.TrimSpace(s))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// TitleFromSlug is the reverse used when a document has a slug but no display name.
// Example: "dryer-repair" -> "Dryer Repair"
func TitleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.Trim(slug, "-/"), "-", " ")
	return cases.Title(language.English).String(words)
}
