package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/config"
	"github.com/mendly/mendly-backend/internal/container"
	pginfra "github.com/mendly/mendly-backend/internal/infrastructure/postgres"
	"github.com/mendly/mendly-backend/internal/infrastructure/search"
	"github.com/mendly/mendly-backend/internal/infrastructure/tokencache"
	"github.com/mendly/mendly-backend/internal/router"
	"github.com/mendly/mendly-backend/pkg/helpers"
	"github.com/mendly/mendly-backend/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	c, err := build(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("startup failed")
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(c),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		helpers.LogError(logger, "server forced to shutdown", err, nil)
	}
	logger.Info("server exited properly")
}

// build connects the store and the optional cache, broker and search clients.
// Optional clients that fail to connect are logged and left disabled.
func build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*container.Container, error) {
	c := container.New(cfg, logger)

	hasher, err := helpers.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	c.Hasher = hasher

	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
		DSN:         cfg.PostgresDSN(),
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
		AppName:     cfg.AppName,
	})
	if err != nil {
		return nil, err
	}
	c.PGPool = pool
	c.OnClose(pool.Close)

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		c.Close()
		return nil, err
	}
	c.Principals = pginfra.NewPrincipalRepository(pool)
	c.Assignments = pginfra.NewAssignmentRepository(pool)

	if err := buildTokenCache(ctx, c); err != nil {
		c.Close()
		return nil, err
	}

	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue, cfg.AppName)
		if err != nil {
			helpers.LogError(logger, "rabbitmq unavailable; welcome emails disabled", err, nil)
		} else {
			c.Events = pub
			c.OnClose(pub.Close)
		}
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			helpers.LogError(logger, "elasticsearch unavailable; search disabled", err, logrus.Fields{"addrs": addrs})
		} else {
			c.Search = search.NewAssignmentIndex(es, cfg.ESAssignmentsIndex)
		}
	}

	helpers.LogInfo(logger, "components ready", logrus.Fields{
		"redis":       c.Redis != nil,
		"rabbitmq":    c.Events != nil,
		"search":      c.Search != nil,
		"bcrypt_cost": c.Hasher.Cost(),
	})
	return c, nil
}

func buildTokenCache(ctx context.Context, c *container.Container) error {
	cfg := c.Config
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			helpers.LogError(c.Logger, "redis unavailable; using in-process token cache", err, nil)
			_ = rdb.Close()
		} else {
			c.Redis = rdb
			c.TokenCache = tokencache.NewRedisCache(rdb, cfg.TokenCacheTTL)
			c.OnClose(func() { _ = rdb.Close() })
			return nil
		}
	}
	mc, err := tokencache.NewMemoryCache(ctx, cfg.TokenCacheTTL)
	if err != nil {
		return err
	}
	c.TokenCache = mc
	c.OnClose(func() { _ = mc.Close() })
	return nil
}
