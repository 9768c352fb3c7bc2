package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yelpcamp/internal/adapter/provider/here"
	"github.com/heartmarshall/yelpcamp/internal/adapter/provider/s3image"
	"github.com/heartmarshall/yelpcamp/internal/app/seeder"
	"github.com/heartmarshall/yelpcamp/internal/auth"
	"github.com/heartmarshall/yelpcamp/internal/config"
	authsvc "github.com/heartmarshall/yelpcamp/internal/service/auth"
	"github.com/heartmarshall/yelpcamp/internal/service/campground"
	"github.com/heartmarshall/yelpcamp/internal/service/comment"
	"github.com/heartmarshall/yelpcamp/internal/transport/middleware"
	"github.com/heartmarshall/yelpcamp/internal/transport/rest"
	"github.com/heartmarshall/yelpcamp/internal/transport/web"
)

const (
	startupTimeout    = 30 * time.Second
	disconnectTimeout = 5 * time.Second
	limiterCleanup    = 5 * time.Minute
)

// Run wires every component from cfg and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("store", cfg.Database.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	st, err := openStore(startCtx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	images, err := s3image.New(startCtx, cfg.Images, logger)
	if err != nil {
		return fmt.Errorf("image uploader: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(limiterCleanup)
	defer limiter.Stop()

	handler, err := newHandler(cfg, logger, st, images, reg, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHandler assembles services and the middleware chain around the router.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	st *store,
	images *s3image.Uploader,
	reg *prometheus.Registry,
	limiter *middleware.RateLimiter,
) (http.Handler, error) {
	geocoder := here.NewProvider(cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey, cfg.Geocoder.Timeout, logger)
	hasher := auth.NewPasswordHasher(cfg.Session.BcryptCost)
	sessions := auth.NewSessionManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTL)

	campgrounds := campground.NewService(logger, st.campgrounds, st.comments, geocoder, images,
		campground.NewMetrics(reg),
		campground.Options{
			RequireOwnerOnDelete: cfg.Campgrounds.RequireOwnerOnDelete,
			StoreTimeout:         cfg.Campgrounds.StoreTimeout,
		})
	comments := comment.NewService(logger, st.campgrounds, st.comments, st.tx, cfg.Campgrounds.StoreTimeout)
	accounts := authsvc.NewService(logger, st.users, hasher, sessions, cfg.Session.PasswordMin)

	render, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	mux := http.NewServeMux()
	web.NewHandler(logger, campgrounds, comments, accounts, render, web.Options{
		SessionCookie:  cfg.Session.CookieName,
		SessionTTL:     cfg.Session.TTL,
		SecureCookies:  cfg.Session.Secure,
		MaxUploadBytes: cfg.Images.MaxUploadBytes,
		AuthThrottle:   limiter.Limit(cfg.Server.AuthRateLimit),
	}).Register(mux)
	rest.NewHealthHandler(st.pinger, st.name, Version).Register(mux)

	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	route := func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.MethodOverride(),
		middleware.Session(accounts, cfg.Session.CookieName, logger),
		middleware.Logger(logger),
		middleware.NewHTTPMetrics(reg).Middleware(route),
	)
	return chain(mux), nil
}

// Seed writes the demo data set into the configured store.
func Seed(ctx context.Context, cfg *config.Config, seedCfg seeder.Config, logger *slog.Logger) (*seeder.Report, error) {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	hasher := auth.NewPasswordHasher(cfg.Session.BcryptCost)
	return seeder.New(logger, st.campgrounds, st.comments, st.users, hasher, seedCfg).
		Run(ctx, seeder.Samples)
}
