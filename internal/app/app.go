// Package app wires configuration into the content tiers, renderer and HTTP engine.
package app

import (
	"context"
	"os"
	"time"

	"appliance-site/config"
	"appliance-site/database"
	pagesapi "appliance-site/internal/api/pages"
	routes "appliance-site/internal/app/http"
	"appliance-site/internal/app/http/middleware"
	"appliance-site/internal/domain/design"
	sanityclient "appliance-site/internal/infra/sanity"
	"appliance-site/internal/infra/staticcontent"
	"appliance-site/internal/render"
	"appliance-site/internal/resolve"
	"appliance-site/internal/source"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Site is the assembled application.
type Site struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	Static   *staticcontent.Provider
	Resolver *resolve.Service
	Renderer *render.Renderer
	Themes   *design.Selector
}

// New builds the content tiers from cfg. A CMS that cannot be reached at startup is
// logged and left out; the site still serves from the remaining tiers.
func New(cfg *config.Config, log *zap.Logger) (*Site, error) {
	if log == nil {
		log = zap.NewNop()
	}

	static, err := staticcontent.Load()
	if err != nil {
		return nil, errors.Wrap(err, "static content")
	}

	site := &Site{Config: cfg, Log: log, Static: static}

	// nil interfaces, never typed nil pointers, for tiers that are off
	var primary, secondary source.Source

	if cfg.PayloadEnabled() {
		db, err := database.Open(cfg.DB_URL, log)
		if err != nil {
			log.Warn("payload tier disabled", zap.Error(err))
		} else {
			site.DB = db
			primary = source.NewPayload(db, cfg.PAYLOAD_PUBLIC_URL)
			pingPayload(db, log)
		}
	}

	if cfg.SanityEnabled() {
		client := sanityclient.NewClient(sanityclient.Config{
			ProjectID:  cfg.SANITY_PROJECT_ID,
			Dataset:    cfg.SANITY_DATASET,
			APIVersion: cfg.SANITY_API_VERSION,
			Token:      cfg.SANITY_TOKEN,
			Timeout:    cfg.SANITY_TIMEOUT,
		}, nil)
		images := sanityclient.ImageURLBuilder{ProjectID: cfg.SANITY_PROJECT_ID, Dataset: cfg.SANITY_DATASET}
		secondary = source.NewSanity(client, images)
	}

	themes, ok := design.NewSelector(cfg.SITE_DESIGN)
	if !ok {
		log.Warn("unknown SITE_DESIGN, using default",
			zap.String("design", cfg.SITE_DESIGN), zap.String("default", string(design.Default)))
	}
	site.Themes = themes

	site.Resolver = resolve.New(log.Named("resolve"), primary, secondary, static)
	site.Renderer = render.NewRenderer(render.DefaultRegistry(site.Resolver), log.Named("render"))

	log.Info("content tiers ready",
		zap.Strings("tiers", site.Resolver.Tiers()),
		zap.String("design", string(themes.Current())))
	return site, nil
}

// pingPayload only reports; an unreachable database stays a tier and is retried per request.
func pingPayload(db *gorm.DB, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := database.Ping(ctx, db); err != nil {
		log.Warn("payload database not reachable yet", zap.Error(err))
		return
	}
	log.Info("connected to payload database")
}

// Engine returns the gin engine serving the site.
func (s *Site) Engine() *gin.Engine {
	switch s.Config.GIN_MODE {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(s.Config.GIN_MODE)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(s.Log.Named("http")))
	r.Use(cors.New(corsConfig(s.Config.CORS_ORIGIN)))

	h := pagesapi.NewHandler(s.Resolver, s.Renderer, s.Themes, s.Log.Named("pages"), func() string {
		return config.FromLookup(os.LookupEnv).SITE_DESIGN
	})
	routes.RegisterRoutes(r, h, s.Config.PREVIEW_SECRET)
	return r
}

func corsConfig(origin string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = []string{origin}
	c.AllowCredentials = true
	return c
}

// Close releases the database pool, if any.
func (s *Site) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
