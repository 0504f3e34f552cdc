package service

import (
	postgresrepo "github.com/countapp/countd/internal/repository/postgres"
	redisrepo "github.com/countapp/countd/internal/repository/redis"
	"github.com/countapp/countd/internal/service/activity"
	"github.com/countapp/countd/internal/service/auth"
	"github.com/countapp/countd/internal/service/counts"
	"github.com/countapp/countd/internal/service/reviews"
	"github.com/countapp/countd/internal/service/screenings"
	"github.com/countapp/countd/internal/tmdb"
	"github.com/countapp/countd/internal/token"
)

type Services struct {
	Auth       *auth.Service
	Screenings *screenings.Service
	Counts     *counts.Service
	Reviews    *reviews.Service
	Activity   *activity.Service
}

type Config struct {
	Auth       auth.Config
	Screenings screenings.Config
}

func NewServices(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ScreeningsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	tmdbClient *tmdb.Client,
	tokens *token.Manager,
	cfg Config,
) *Services {
	return &Services{
		Auth:       auth.New(store, tokens, limiter, cfg.Auth),
		Screenings: screenings.New(store, cache, pubsub, tmdbClient, cfg.Screenings),
		Counts:     counts.New(store, cache, pubsub, limiter),
		Reviews:    reviews.New(store, cache, pubsub),
		Activity:   activity.New(store),
	}
}
