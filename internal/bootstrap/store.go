// Package bootstrap 组装两个二进制共用的依赖：仓储、缓存、种子数据、服务层与 JWT。
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"eco-waste-api/internal/core/auth"
	"eco-waste-api/internal/core/cache"
	"eco-waste-api/internal/core/config"
	"eco-waste-api/internal/core/database"
	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/repo"
)

const (
	BackendMemory = "memory"
	BackendGorm   = "gorm"
)

// OpenRepositories 按 store.backend 选择实现；返回的 cleanup 负责关闭连接
func OpenRepositories(ctx context.Context, cfg *config.Config, l *zap.Logger) (domain.Repositories, func(), error) {
	var (
		repos   domain.Repositories
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Store.Backend {
	case "", BackendMemory:
		repos = repo.NewMemory(repo.MemoryOptions{})
		l.Info("store backend", zap.String("backend", BackendMemory))
	case BackendGorm:
		db, err := database.NewGorm(database.OptsFromConfig(cfg.DB))
		if err != nil {
			return domain.Repositories{}, cleanup, fmt.Errorf("open db: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { _ = sqlDB.Close() })
		}
		if cfg.DB.AutoMigrate {
			if err := repo.Migrate(db); err != nil {
				cleanup()
				return domain.Repositories{}, func() {}, fmt.Errorf("automigrate: %w", err)
			}
			l.Info("automigrate done")
		}
		repos = repo.NewGorm(db, nil)
		l.Info("store backend", zap.String("backend", BackendGorm), zap.String("driver", cfg.DB.Driver))
	default:
		return domain.Repositories{}, cleanup, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Store.Seed {
		p, f, err := repo.Seed(ctx, repos)
		if err != nil {
			cleanup()
			return domain.Repositories{}, func() {}, err
		}
		l.Info("seed done", zap.Int("payments", p), zap.Int("facilities", f))
	}

	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		closers = append(closers, func() { _ = c.Close() })
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := c.Ping(pingCtx)
		cancel()
		if err != nil {
			// 缓存不可用不影响主流程，直接退回无缓存
			l.Warn("redis unavailable, cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			repos = repo.WithCache(repos, c, time.Duration(cfg.Redis.TTLSec)*time.Second, l.Named("cache"))
			l.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}
	return repos, cleanup, nil
}

func JWTer(c config.JWT) *auth.JWTer {
	return &auth.JWTer{
		Secret: []byte(c.Secret),
		Issuer: c.Issuer,
		TTL:    time.Duration(c.AccessTokenTTLMin) * time.Minute,
	}
}
