package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/javiercriado/interview-dashboard/internal/analytics"
	"github.com/javiercriado/interview-dashboard/internal/cache"
	"github.com/javiercriado/interview-dashboard/internal/config"
	"github.com/javiercriado/interview-dashboard/internal/database"
	"github.com/javiercriado/interview-dashboard/internal/handler"
	"github.com/javiercriado/interview-dashboard/internal/logger"
	"github.com/javiercriado/interview-dashboard/internal/mailer"
	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/internal/repository/memory"
	"github.com/javiercriado/interview-dashboard/internal/repository/postgres"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s store=%s", cfg.Env, cfg.Store.Backend)

	var repo *repository.Repository
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := database.Connect(ctx, cfg.Store.DSN)
		if err != nil {
			sugar.Fatal(err)
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			sugar.Fatal(err)
		}
		repo = postgres.NewRepository(pool)
	default:
		repo = memory.NewSeededStore().Repository()
	}

	var snapshots analytics.SnapshotCache
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Fatalf("redis ping: %v", err)
		}
		snapshots = cache.NewAnalyticsCache(rdb, cfg.Analytics.CacheTTL)
		sugar.Infof("analytics cache enabled, ttl=%s", cfg.Analytics.CacheTTL)
	}

	app := &application{
		Logger: log,
		Config: cfg,
		Handler: &handler.Handler{
			Logger:    log,
			Repo:      repo,
			Analytics: analytics.NewService(repo, snapshots),
			Mailer:    mailer.NewSender(log, cfg.Invite.SendDelay),
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
