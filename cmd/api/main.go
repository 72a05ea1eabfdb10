package main

import (
	"go-ponto/internal/app"
	"go-ponto/internal/bootstrap"
	"go-ponto/internal/config"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	auditLogger := audit.NewStdoutLogger(logger)

	// build dependency + routes
	if err := app.BuildApp(cfg, r, auditLogger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.Port), auditLogger)
}
