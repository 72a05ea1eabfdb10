package app

import (
	"context"
	"time"

	"go-ponto/internal/config"
	"go-ponto/internal/database"
	"go-ponto/internal/shared/audit"
	"go-ponto/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp connects the infrastructure, seeds the administrator and mounts
// every module on router.
func BuildApp(cfg *config.Config, router *gin.Engine, auditLogger audit.Logger) error {
	logger := zap.L().Named("app")

	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.MigrateURL()); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), connectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, caches and idempotency keys are disabled")
	}

	modules, err := registerModules(router, cfg, sqlDB, gormDB, rdb, auditLogger)
	if err != nil {
		return err
	}

	if cfg.AdminEmail != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrapAdmin(ctx, cfg, modules, auditLogger); err != nil {
			return err
		}
	}
	return nil
}
