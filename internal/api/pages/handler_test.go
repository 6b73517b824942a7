package pagesapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appliance-site/internal/app/http/middleware"
	"appliance-site/internal/domain/design"
	sanityclient "appliance-site/internal/infra/sanity"
	"appliance-site/internal/infra/staticcontent"
	"appliance-site/internal/render"
	"appliance-site/internal/resolve"
	"appliance-site/internal/source"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() { gin.SetMode(gin.TestMode) }

const cmsHome = `{"result":[{
	"_id":"page-home","_type":"page","title":"Welcome","slug":{"_type":"slug","current":"home"},
	"pageBuilder":[
		{"_type":"hero","_key":"a","heading":"From the CMS"},
		{"_type":"carousel","_key":"b"},
		{"_type":"ctaBlock","_key":"c","heading":"Call us","button":{"label":"Call","url":"tel:5550132040"}}
	]}]}`

// fakeSanity serves a single page document and nothing else.
func fakeSanity(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("$type") == `"page"` && q.Get("$slug") == `"home"` {
			_, _ = w.Write([]byte(cmsHome))
			return
		}
		_, _ = w.Write([]byte(`{"result":null}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, secondary source.Source, theme string) (*gin.Engine, *design.Selector) {
	log := zaptest.NewLogger(t)
	resolver := resolve.New(log, nil, secondary, staticcontent.MustLoad())
	renderer := render.NewRenderer(render.DefaultRegistry(resolver), log)
	themes, _ := design.NewSelector(theme)
	h := NewHandler(resolver, renderer, themes, log, func() string { return "industrial" })

	r := gin.New()
	r.Use(middleware.SanitizeQueryMiddleware())
	r.GET("/", h.Page("home"))
	r.GET("/services", h.Page("services"))
	r.GET("/services/:slug", h.ServiceDetail)
	r.GET("/blog/:slug", h.PostDetail)
	r.GET("/service-areas/:slug", h.AreaDetail)
	r.GET("/api/pages/:slug", h.GetPageJSON)
	r.GET("/api/services", h.ListServicesJSON)
	r.GET("/api/posts", h.ListPostsJSON)
	r.GET("/health", h.Health)
	r.GET("/preview/*path", h.Preview)
	r.POST("/reload", h.ReloadDesign)
	r.NoRoute(h.CatchAll)
	return r, themes
}

func do(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHome_StaticFallbackUsesPageDesign(t *testing.T) {
	r, _ := newTestRouter(t, nil, "bold")

	w := do(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "static", w.Header().Get("X-Content-Source"))
	assert.Contains(t, w.Body.String(), "theme-classic")
	assert.Contains(t, w.Body.String(), "Appliance broken?")
	assert.Contains(t, w.Body.String(), "Ace Appliance Repair")
}

func TestHome_FromSecondaryCMSUsesSelectedTheme(t *testing.T) {
	client := sanityclient.NewClient(sanityclient.Config{BaseURL: fakeSanity(t).URL}, nil)
	r, _ := newTestRouter(t, source.NewSanity(client, nil), "bold")

	w := do(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "sanity", w.Header().Get("X-Content-Source"))
	assert.Contains(t, body, "theme-bold")
	assert.Contains(t, body, "From the CMS")
	assert.Contains(t, body, `href="tel:5550132040"`)
	assert.NotContains(t, body, "carousel")
}

func TestDetailPages(t *testing.T) {
	r, _ := newTestRouter(t, nil, "classic")

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/services/washer-repair").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/blog/dishwasher-smells").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/service-areas/riverside").Code)

	w := do(r, http.MethodGet, "/services/microwave-repair")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestCatchAll(t *testing.T) {
	r, _ := newTestRouter(t, nil, "classic")

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/contact").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/nothing-here").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/contact").Code)

	w := do(r, http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestGetPageJSON(t *testing.T) {
	r, _ := newTestRouter(t, nil, "modern")

	w := do(r, http.MethodGet, "/api/pages/about")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GetPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "about", resp.Page.Slug)
	assert.True(t, resp.Page.Static)
	assert.Equal(t, "classic", resp.Page.Design)
	require.NotEmpty(t, resp.Page.Blocks)
	assert.Equal(t, "hero", resp.Page.Blocks[0].Type)
	assert.Equal(t, 0, resp.Page.Blocks[0].SortIndex)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/pages/nope").Code)
}

func TestListServicesJSON(t *testing.T) {
	r, _ := newTestRouter(t, nil, "classic")

	w := do(r, http.MethodGet, "/api/services")
	require.Equal(t, http.StatusOK, w.Code)
	var resp GetServicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Services)
	assert.Equal(t, "refrigerator-repair", resp.Services[0].Slug)
	assert.NotNil(t, resp.Services[0].Features)
}

func TestListPostsJSON_CategoryFilter(t *testing.T) {
	r, _ := newTestRouter(t, nil, "classic")

	w := do(r, http.MethodGet, "/api/posts?category=%3Cb%3EDryers%3C%2Fb%3E")
	require.Equal(t, http.StatusOK, w.Code)
	var resp GetPostsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Posts)
	for _, p := range resp.Posts {
		assert.Equal(t, "Dryers", p.Category)
	}

	w = do(r, http.MethodGet, "/api/posts?category=Microwaves")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Posts)
}

func TestPreviewServesDetailRoutes(t *testing.T) {
	r, _ := newTestRouter(t, nil, "classic")

	w := do(r, http.MethodGet, "/preview/services/washer-repair")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Washer Repair")
	assert.Contains(t, w.Body.String(), "preview-banner")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/preview/blog/dishwasher-smells").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/preview/services/microwave-repair").Code)
}

func TestPreviewIsNotCached(t *testing.T) {
	r, _ := newTestRouter(t, nil, "classic")

	w := do(r, http.MethodGet, "/preview/about")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "preview-banner")
}

func TestReloadDesign(t *testing.T) {
	r, themes := newTestRouter(t, nil, "classic")

	w := do(r, http.MethodPost, "/reload")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, design.Industrial, themes.Current())

	w = do(r, http.MethodGet, "/health")
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "industrial", health.Design)
	assert.Equal(t, []string{"static"}, health.Tiers)
}
