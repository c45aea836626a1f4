package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/qatalent/jobboard/config"
	httpx "github.com/qatalent/jobboard/internal/http"
)

const shutdownTimeout = 10 * time.Second

// ServerOptions contains dependencies for the HTTP server.
type ServerOptions struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// NewHandler builds the HTTP handler from wired services.
func NewHandler(opts ServerOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := opts.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	return httpx.NewRouter(httpx.RouterServices{
		Auth:         opts.Services.Auth,
		Directory:    opts.Services.Directory,
		Catalog:      opts.Services.Catalog,
		Ledger:       opts.Services.Ledger,
		CookieDomain: appCfg.HTTP.CookieDomain,
		LogoutURL:    appCfg.Auth.OAuth.LogoutURL,
		Logger:       logger,
	})
}

// RunServerWithShutdown serves HTTP until ctx is canceled, then drains
// in-flight requests. It blocks until the server has fully stopped.
func RunServerWithShutdown(ctx context.Context, opts ServerOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	addr := ""
	if opts.Config != nil {
		addr = opts.Config.HTTP.Addr
	}
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      NewHandler(opts),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
