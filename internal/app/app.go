package app

import (
	"context"
	"fmt"

	"local-events/config"
	"local-events/internal/cache"
	"local-events/internal/database"
	"local-events/internal/handler"
	"local-events/internal/idgen"
	"local-events/internal/metrics"
	"local-events/internal/seed"
	"local-events/internal/service"
	"local-events/internal/store"
	"local-events/internal/validation"
	"local-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds everything created at startup. The store lives exactly as long as App.
type App struct {
	Router  *gin.Engine
	Service service.EventService
	Metrics *metrics.Metrics

	rdb *redis.Client
}

// New builds the store from the seed catalog and wires it into the HTTP router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.WithComponent("app")

	events, err := seed.Load(cfg.Catalog.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed catalog: %w", err)
	}
	gen, err := idgen.FromStrategy(cfg.Catalog.IDStrategy, cfg.Catalog.SequenceMin)
	if err != nil {
		return nil, err
	}
	eventStore, err := store.New(events, gen)
	if err != nil {
		return nil, fmt.Errorf("build event store: %w", err)
	}
	log.Info("Event store ready",
		zap.Int("events", eventStore.Len()),
		zap.String("id_strategy", cfg.Catalog.IDStrategy),
	)

	a := &App{Metrics: metrics.New()}

	guard := cache.NewNoopSubmissionGuard()
	if cfg.Redis.Enabled {
		a.rdb, err = database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		guard = cache.NewRedisSubmissionGuard(a.rdb, cfg.Redis.SubmissionTTL)
		log.Info("Submission guard backed by redis", zap.Duration("ttl", cfg.Redis.SubmissionTTL))
	}

	a.Service = service.NewEventService(eventStore, guard, a.Metrics, service.CategoryOptions{
		AllLabel: cfg.Catalog.AllLabel,
		Fixed:    cfg.Catalog.Categories,
	})
	a.Router = NewRouter(handler.NewEventHandler(a.Service, validation.New()), a.Metrics)
	return a, nil
}

func NewRouter(eventHandler *handler.EventHandler, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), m.Middleware())
	eventHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	return router
}

func (a *App) Close() error {
	if a.rdb != nil {
		return a.rdb.Close()
	}
	return nil
}
