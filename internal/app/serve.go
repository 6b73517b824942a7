package app

import (
	"context"
	"io"
	"net/http"
	"time"

	"appliance-site/internal/render"
	"appliance-site/internal/resolve"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight requests.
func (s *Site) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Config.PORT,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	s.Log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// Render writes the HTML document for route to w. It reports NotFound through the
// returned kind after writing the not-found document.
func (s *Site) Render(ctx context.Context, w io.Writer, route string, preview bool) (resolve.PageKind, error) {
	pr := s.Resolver.ResolveRoute(ctx, route, preview)
	rc := render.Context{
		Theme:    s.Themes.Current(),
		Settings: s.Resolver.Settings(ctx).Value,
		Preview:  preview,
	}
	if pr.Kind == resolve.NotFound {
		return pr.Kind, s.Renderer.RenderNotFound(w, rc)
	}
	return pr.Kind, s.Renderer.RenderPage(ctx, w, pr.Page, rc)
}
