package pagesapi

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/render"
	"appliance-site/internal/resolve"
	"appliance-site/internal/source"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler serves the public site. It holds no per-request state.
type Handler struct {
	resolver *resolve.Service
	renderer *render.Renderer
	themes   *design.Selector
	log      *zap.Logger

	// configuredDesign re-reads the design setting for a reload.
	configuredDesign func() string
}

func NewHandler(resolver *resolve.Service, renderer *render.Renderer, themes *design.Selector, log *zap.Logger, configuredDesign func() string) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		resolver:         resolver,
		renderer:         renderer,
		themes:           themes,
		log:              log,
		configuredDesign: configuredDesign,
	}
}

type resolveFunc func(ctx context.Context) resolve.PageResult

// Page serves an authored page: a CMS layout if one resolves, else the static page.
func (h *Handler) Page(routeKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serve(c, func(ctx context.Context) resolve.PageResult {
			return h.resolver.ResolvePage(ctx, routeKey)
		}, false)
	}
}

// GET /services/:slug
func (h *Handler) ServiceDetail(c *gin.Context) {
	slug := c.Param("slug")
	h.serve(c, func(ctx context.Context) resolve.PageResult { return h.resolver.ServicePage(ctx, slug) }, false)
}

// GET /blog/:slug
func (h *Handler) PostDetail(c *gin.Context) {
	slug := c.Param("slug")
	h.serve(c, func(ctx context.Context) resolve.PageResult { return h.resolver.PostPage(ctx, slug) }, false)
}

// GET /service-areas/:slug
func (h *Handler) AreaDetail(c *gin.Context) {
	slug := c.Param("slug")
	h.serve(c, func(ctx context.Context) resolve.PageResult { return h.resolver.AreaPage(ctx, slug) }, false)
}

// NoRoute: any other GET path is looked up as a CMS page slug.
func (h *Handler) CatchAll(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	h.serve(c, func(ctx context.Context) resolve.PageResult { return h.resolver.ResolvePage(ctx, path) }, false)
}

// GET /preview/*path (preview token)
func (h *Handler) Preview(c *gin.Context) {
	path := c.Param("path")
	h.serve(c, func(ctx context.Context) resolve.PageResult { return h.resolver.ResolveRoute(ctx, path, true) }, true)
}

// serve fetches settings and the page concurrently, then renders the document.
func (h *Handler) serve(c *gin.Context, resolvePage resolveFunc, preview bool) {
	ctx := c.Request.Context()

	var (
		settings source.Result[content.Settings]
		pr       resolve.PageResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		settings = h.resolver.Settings(gctx)
		return nil
	})
	g.Go(func() error {
		pr = resolvePage(gctx)
		return nil
	})
	_ = g.Wait()

	rc := render.Context{
		Theme:    h.themes.Current(),
		Settings: settings.Value,
		Preview:  preview,
	}

	if preview {
		c.Header("Cache-Control", "no-store")
		c.Header("X-Robots-Tag", "noindex")
	}

	var buf bytes.Buffer
	status := http.StatusOK
	var err error
	if pr.Kind == resolve.NotFound {
		status = http.StatusNotFound
		err = h.renderer.RenderNotFound(&buf, rc)
	} else {
		err = h.renderer.RenderPage(ctx, &buf, pr.Page, rc)
	}
	if err != nil {
		h.log.Error("page render failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("Internal Server Error"))
		return
	}

	if status == http.StatusOK && !preview {
		c.Header("Cache-Control", "public, max-age=60")
	}
	if pr.Tier != "" {
		c.Header("X-Content-Source", pr.Tier)
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// GET /api/pages/:slug
func (h *Handler) GetPageJSON(c *gin.Context) {
	pr := h.resolver.ResolvePage(c.Request.Context(), c.Param("slug"))
	if pr.Kind == resolve.NotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, GetPageResponse{Page: pageDTO(pr, h.themes.Current())})
}

// GET /api/services
func (h *Handler) ListServicesJSON(c *gin.Context) {
	q := source.Query{Featured: c.Query("featured") == "true"}
	res := h.resolver.Services(c.Request.Context(), q)
	if !res.Ok() {
		c.JSON(http.StatusOK, GetServicesResponse{Services: []ServiceDTO{}})
		return
	}
	c.JSON(http.StatusOK, GetServicesResponse{Services: serviceDTOs(res.Value)})
}

// GET /api/posts?category=Dryers
func (h *Handler) ListPostsJSON(c *gin.Context) {
	q := source.Query{Category: strings.TrimSpace(c.Query("category"))}
	res := h.resolver.Posts(c.Request.Context(), q)
	if !res.Ok() {
		c.JSON(http.StatusOK, GetPostsResponse{Posts: []PostDTO{}})
		return
	}
	c.JSON(http.StatusOK, GetPostsResponse{Posts: postDTOs(res.Value)})
}

// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Tiers:  h.resolver.Tiers(),
		Design: string(h.themes.Current()),
	})
}

// POST /admin/design/reload (admin token)
func (h *Handler) ReloadDesign(c *gin.Context) {
	if h.configuredDesign == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Design reload not configured"})
		return
	}
	want := h.configuredDesign()
	if !h.themes.Reload(want) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Unknown design",
			"design": want,
			"active": string(h.themes.Current()),
		})
		return
	}
	h.log.Info("design reloaded", zap.String("design", string(h.themes.Current())))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "design": string(h.themes.Current())})
}
