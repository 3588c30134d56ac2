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

// 管理端与用户端共享同一份存储配置；memory 后端下两个进程的数据互不可见
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Store.Backend != bootstrap.BackendGorm {
		log.Warn("admin api running on non-shared store", zap.String("backend", cfg.Store.Backend))
	}

	repos, closeStore, err := bootstrap.OpenRepositories(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	jwter := bootstrap.JWTer(cfg.JWT)
	svc := service.New(repos, log)
	r := router.NewAdminEngine(log, router.Modules(svc, jwter, log), jwter, router.LimitsFromConfig(cfg.App.Limits))

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	base := server.BaseURL(cfg.App.Admin.Host, cfg.App.Admin.Port)
	log.Info("admin api",
		zap.String("open", base),
		zap.String("health", base+"/health"),
		zap.String("admin_v1", base+"/admin/v1"),
		zap.String("metrics", base+"/metrics"),
	)
	server.Run(server.FromConfig(addr, r, cfg.App.HTTP), "admin api", log)
}
