package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/countapp/countd/internal/config"
	"github.com/countapp/countd/internal/feed"
	"github.com/countapp/countd/internal/postgres"
	"github.com/countapp/countd/internal/redis"
	postgresrepo "github.com/countapp/countd/internal/repository/postgres"
	redisrepo "github.com/countapp/countd/internal/repository/redis"
	"github.com/countapp/countd/internal/service"
	"github.com/countapp/countd/internal/service/screenings"
	"github.com/countapp/countd/internal/tmdb"
	"github.com/countapp/countd/internal/token"
	httpgin "github.com/countapp/countd/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	pubsub     *redisrepo.ScreeningsPubSub
	hub        *feed.Hub
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redis.New(context.Background(), redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewScreeningsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "rl", 10, 1*time.Minute)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)

	// Movie metadata client and token manager
	tmdbClient := tmdb.New(tmdb.Config{APIKey: cfg.TMDB.APIKey, BaseURL: cfg.TMDB.BaseURL})
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Initialize services
	services := service.NewServices(store, cache, pubsub, limiter, tmdbClient, tokens, service.Config{
		Screenings: screenings.Config{},
	})

	// In-process change feed for live connections
	hub := feed.NewHub()

	// Initialize Gin router
	router := httpgin.NewRouter(services, hub, idempotencyStore, tokens, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
		pubsub: pubsub,
		hub:    hub,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Bridge Redis change notifications into the in-process hub so every
	// instance wakes its own live connections.
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(_ context.Context, screeningID string) {
			a.hub.Broadcast(screeningID)
		})
		if err != nil && gCtx.Err() == nil {
			return fmt.Errorf("change feed subscription failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
