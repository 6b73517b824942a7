package routes

import (
	pagesapi "appliance-site/internal/api/pages"
	"appliance-site/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// IndexPages are the authored pages with a fixed route; any other slug goes through
// NoRoute.
var IndexPages = []string{"about", "services", "blog", "service-areas", "testimonials", "team", "contact"}

func RegisterRoutes(r *gin.Engine, h *pagesapi.Handler, previewSecret string) {
	r.GET("/health", h.Health)

	public := r.Group("/")
	public.Use(middleware.SanitizeQueryMiddleware())

	public.GET("/", h.Page("home"))
	for _, slug := range IndexPages {
		public.GET("/"+slug, h.Page(slug))
	}
	public.GET("/services/:slug", h.ServiceDetail)
	public.GET("/blog/:slug", h.PostDetail)
	public.GET("/service-areas/:slug", h.AreaDetail)

	api := public.Group("/api")
	api.GET("/pages/:slug", h.GetPageJSON)
	api.GET("/services", h.ListServicesJSON)
	api.GET("/posts", h.ListPostsJSON)

	// Draft preview; PreviewAuth answers 404 when no secret is configured
	preview := r.Group("/preview")
	preview.Use(middleware.PreviewAuth(previewSecret))
	preview.GET("/*path", h.Preview)

	admin := r.Group("/admin")
	admin.Use(middleware.PreviewAuth(previewSecret), middleware.RequireScope(middleware.ScopeAdmin))
	admin.POST("/design/reload", h.ReloadDesign)

	r.NoRoute(middleware.SanitizeQueryMiddleware(), h.CatchAll)
}
