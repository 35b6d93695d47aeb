package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/apsdehal/go-logger"
	"golang.org/x/sync/errgroup"

	"urlfetcher/echoservice/internal/api"
	"urlfetcher/echoservice/internal/config"
)

// Run listens on cfg.Addr() and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	lis, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	return Serve(ctx, lis, cfg, log)
}

// Serve serves the echo API on lis until ctx is cancelled, then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func Serve(ctx context.Context, lis net.Listener, cfg config.Config, log *logger.Logger) error {
	httpServer := &http.Server{
		Handler: api.NewRouter(api.Config{
			BasePath:      cfg.APIBasePath,
			EnableMetrics: cfg.EnableMetrics,
			Log:           log,
		}),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting echo server on %s", lis.Addr())
		if err := httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return gracefulShutdown(gctx, httpServer, cfg, log)
	})
	return g.Wait()
}

func gracefulShutdown(ctx context.Context, httpServer *http.Server, cfg config.Config, log *logger.Logger) error {
	<-ctx.Done()
	log.Infof("Shutting down echo server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP: %w", err)
	}
	return nil
}
