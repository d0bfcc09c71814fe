package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fidexia/backend/config"
	"fidexia/backend/controllers"
	"fidexia/backend/database"
	"fidexia/backend/fixtures"
	"fidexia/backend/logger"
	"fidexia/backend/metrics"
	"fidexia/backend/routes"
	"fidexia/backend/screens"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	zl, err := logger.NewForEnvironment(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		zl.Fatal("session store", zap.String("kind", cfg.SessionStore), zap.Error(err))
	}
	defer closeStore()

	data, closeData, err := openFixtures(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("fixtures", zap.String("source", cfg.FixturesSource), zap.Error(err))
	}
	defer closeData()

	reg, err := screens.NewRegistry(data)
	if err != nil {
		zl.Fatal("screen registry", zap.Error(err))
	}

	deps := &controllers.Deps{
		Cfg:     cfg,
		Store:   store,
		Screens: reg,
		Data:    data,
		Gateway: controllers.LogGateway{Log: zl.Named("gateway")},
		Metrics: metrics.New(),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.GinMiddleware(zl), logger.Recovery(zl), deps.Metrics.GinMiddleware())
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, deps)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		zl.Info("server listening",
			zap.String("port", cfg.Port),
			zap.String("session_store", cfg.SessionStore),
			zap.String("fixtures", cfg.FixturesSource),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}

func openStore(cfg config.Config) (session.Store, func(), error) {
	if cfg.SessionStore != config.StoreRedis {
		return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}
	rs, err := session.NewRedisStore(session.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.SessionTTL)
	if err != nil {
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}

// openFixtures serves the built-in catalog, or the Postgres one seeded from it.
func openFixtures(ctx context.Context, cfg config.Config, zl *zap.Logger) (fixtures.Provider, func(), error) {
	if cfg.FixturesSource != config.FixturesPostgres {
		return fixtures.Static(), func() {}, nil
	}
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	if err := database.Seed(ctx, pool, fixtures.Static()); err != nil {
		pool.Close()
		return nil, nil, err
	}
	zl.Info("postgres catalog ready")
	return fixtures.NewCatalog(pool), pool.Close, nil
}
