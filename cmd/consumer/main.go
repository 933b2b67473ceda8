package main

import (
	"elms-portal/internal/app"
	"elms-portal/internal/config"
	"elms-portal/internal/shared/apperror"
	"elms-portal/internal/shared/logging"

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

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
