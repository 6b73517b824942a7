package render

import (
	"embed"
	"html/template"
	"net/url"
	"strings"
	"time"
	"unicode"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var views = template.Must(template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

var funcs = template.FuncMap{
	"markdown": Markdown,
	"stars":    stars,
	"tel":      tel,
	"href":     href,
	"join":     strings.Join,
	"year":     func() int { return time.Now().Year() },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// tel turns a display phone number into a tel: href.
func tel(phone string) template.URL {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == '+' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return template.URL("tel:" + b.String())
}

// href lets CMS links use tel: on top of the schemes html/template already trusts.
// Anything else that is not a relative link becomes "#".
func href(raw string) template.URL {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return template.URL(u.String())
	case "tel":
		return tel(u.Opaque)
	}
	return "#"
}
