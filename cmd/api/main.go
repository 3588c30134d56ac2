package main

import (
	"context"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"eco-waste-api/internal/bootstrap"
	"eco-waste-api/internal/core/config"
	"eco-waste-api/internal/core/logger"
	"eco-waste-api/internal/core/server"
	"eco-waste-api/internal/service"
	"eco-waste-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, closeStore, err := bootstrap.OpenRepositories(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	svc := service.New(repos, log)
	reg := router.Modules(svc, bootstrap.JWTer(cfg.JWT), log)
	r := router.NewAPIEngine(log, reg, router.LimitsFromConfig(cfg.App.Limits))

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	base := server.BaseURL(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	log.Info("user api",
		zap.String("open", base),
		zap.String("health", base+"/health"),
		zap.String("api_v1", base+"/api/v1"),
	)
	server.Run(server.FromConfig(addr, r, cfg.App.HTTP), "user api", log)
}
