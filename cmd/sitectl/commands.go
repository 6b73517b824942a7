package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"appliance-site/config"
	"appliance-site/database"
	"appliance-site/internal/app"
	"appliance-site/internal/app/http/middleware"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/infra/staticcontent"
	"appliance-site/internal/resolve"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = site.Close() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return site.Serve(ctx)
	},
}

var (
	seedMigrate bool
	seedPublish bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the built-in content into an empty Payload database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(config.MustEnv("DB_URL"), logger)
		if err != nil {
			return err
		}
		if seedMigrate {
			if err := database.Migrate(db); err != nil {
				return err
			}
		}

		static, err := staticcontent.Load()
		if err != nil {
			return err
		}
		report, err := database.Seed(cmd.Context(), db, static, seedPublish)
		if errors.Is(err, database.ErrAlreadySeeded) {
			logger.Warn("seed skipped: database already has pages")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "seed failed")
		}
		logger.Info("seeded",
			zap.Int("pages", report.Pages),
			zap.Int("blocks", report.Blocks),
			zap.Int("entities", report.Entities))
		return nil
	},
}

var renderPreview bool

var renderCmd = &cobra.Command{
	Use:   "render <route>",
	Short: "Resolve a route and print its HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = site.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		kind, err := site.Render(ctx, cmd.OutOrStdout(), args[0], renderPreview)
		if err != nil {
			return err
		}
		if kind == resolve.NotFound {
			return errors.Errorf("%s: not found", args[0])
		}
		logger.Debug("rendered", zap.String("route", args[0]), zap.Stringer("kind", kind))
		return nil
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available designs",
	Run: func(cmd *cobra.Command, args []string) {
		current, _ := design.Parse(cfg.SITE_DESIGN)
		for _, t := range design.All() {
			marker := " "
			if t == current {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, t)
		}
	},
}

var (
	tokenScope string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token [subject]",
	Short: "Issue a preview or admin token signed with PREVIEW_SECRET",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject := ""
		if len(args) == 1 {
			subject = args[0]
		}
		if tokenScope != middleware.ScopePreview && tokenScope != middleware.ScopeAdmin {
			return errors.Errorf("unknown scope %q", tokenScope)
		}
		token, err := middleware.SignPreviewToken(cfg.PREVIEW_SECRET, tokenScope, subject, jwt.MapClaims{
			"exp": time.Now().Add(tokenTTL).Unix(),
			"iat": time.Now().Unix(),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "create tables before seeding")
	seedCmd.Flags().BoolVar(&seedPublish, "publish", false, "create pages as published instead of draft")
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "prefer draft content")
	tokenCmd.Flags().StringVar(&tokenScope, "scope", middleware.ScopePreview, "preview or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
}

