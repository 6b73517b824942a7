package render

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
)

// Chrome describes the header and footer variant a theme uses.
type Chrome struct {
	Header      string
	Footer      string
	ShowTagline bool
}

var chromes = map[design.Theme]Chrome{
	design.Classic:    {Header: "centered", Footer: "columns", ShowTagline: true},
	design.Modern:     {Header: "split", Footer: "minimal"},
	design.Bold:       {Header: "banner", Footer: "columns", ShowTagline: true},
	design.Minimal:    {Header: "inline", Footer: "minimal"},
	design.Elegant:    {Header: "centered", Footer: "serif", ShowTagline: true},
	design.Industrial: {Header: "split", Footer: "columns"},
}

func ChromeFor(t design.Theme) Chrome {
	if c, ok := chromes[t]; ok {
		return c
	}
	return chromes[design.Default]
}

type NavItem struct {
	Label string
	URL   string
}

var nav = []NavItem{
	{Label: "Services", URL: "/services"},
	{Label: "Service Areas", URL: "/service-areas"},
	{Label: "About", URL: "/about"},
	{Label: "Reviews", URL: "/testimonials"},
	{Label: "Blog", URL: "/blog"},
	{Label: "Contact", URL: "/contact"},
}

type PageView struct {
	Page     content.Page
	Title    string
	Theme    design.Theme
	Chrome   Chrome
	Settings content.Settings
	Nav      []NavItem
	Blocks   []Rendered
	Preview  bool
}

// ThemeFor picks the theme a page is drawn with. Static pages were written for one
// design and keep it; CMS pages use the configured theme.
func ThemeFor(page content.Page, rc Context) design.Theme {
	if page.Design != "" {
		return page.Design
	}
	if rc.Theme == "" {
		return design.Default
	}
	return rc.Theme
}

func pageTitle(page content.Page, settings content.Settings) string {
	title := page.Meta.Title
	if title == "" {
		title = page.Title
	}
	switch {
	case title == "":
		return settings.SiteName
	case settings.SiteName == "" || page.Meta.Title != "":
		return title
	}
	return title + " | " + settings.SiteName
}

// RenderPage writes a full HTML document for page.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page content.Page, rc Context) error {
	rc.Theme = ThemeFor(page, rc)
	return views.ExecuteTemplate(w, "page", PageView{
		Page:     page,
		Title:    pageTitle(page, rc.Settings),
		Theme:    rc.Theme,
		Chrome:   ChromeFor(rc.Theme),
		Settings: rc.Settings,
		Nav:      nav,
		Blocks:   r.RenderBlocks(ctx, page.Layout, rc),
		Preview:  rc.Preview,
	})
}

// RenderNotFound writes the 404 document inside the configured chrome.
func (r *Renderer) RenderNotFound(w io.Writer, rc Context) error {
	var body bytes.Buffer
	if err := views.ExecuteTemplate(&body, "notfound", nil); err != nil {
		return err
	}
	if rc.Theme == "" {
		rc.Theme = design.Default
	}
	return views.ExecuteTemplate(w, "page", PageView{
		Page:     content.Page{Title: "Page not found"},
		Title:    pageTitle(content.Page{Title: "Page not found"}, rc.Settings),
		Theme:    rc.Theme,
		Chrome:   ChromeFor(rc.Theme),
		Settings: rc.Settings,
		Nav:      nav,
		Blocks:   []Rendered{{Kind: "notFound", HTML: template.HTML(body.String())}},
	})
}
