package main

import (
	"time"

	"elms-portal/internal/app"
	"elms-portal/internal/bootstrap"
	"elms-portal/internal/config"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.IsDevelopment(), cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	portal, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer portal.Close()

	logger.Info("portal configured",
		zap.String("env", string(cfg.Env)),
		zap.String("api_base_url", cfg.API.BaseURL),
	)

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		portal.Audit,
	)
}
