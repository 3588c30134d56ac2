package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eco-waste-api/internal/core/auth"
	"eco-waste-api/internal/core/config"
	"eco-waste-api/internal/service"
	"eco-waste-api/internal/transport/http/handler"
	mdw "eco-waste-api/internal/transport/http/middleware"
)

// Limits 中间件参数；零值走默认
type Limits struct {
	RPS         float64
	Burst       int
	Concurrency int64
	MaxBody     int64
	Timeout     time.Duration
}

func LimitsFromConfig(c config.Limits) Limits {
	return Limits{
		RPS:         c.RPS,
		Burst:       c.Burst,
		Concurrency: c.Concurrency,
		MaxBody:     c.MaxBodyKB << 10,
		Timeout:     time.Duration(c.TimeoutSec) * time.Second,
	}
}

func (l Limits) withDefaults() Limits {
	if l.RPS <= 0 {
		l.RPS = 200
	}
	if l.Burst <= 0 {
		l.Burst = 400
	}
	if l.Concurrency <= 0 {
		l.Concurrency = 300
	}
	if l.MaxBody <= 0 {
		l.MaxBody = 1 << 20
	}
	if l.Timeout <= 0 {
		l.Timeout = 10 * time.Second
	}
	return l
}

// Modules 两个引擎共用的业务模块
func Modules(svc *service.Services, jwter *auth.JWTer, l *zap.Logger) *Registry {
	return NewRegistry(
		handler.NewUser(svc.Users, jwter, l),
		handler.NewFacility(svc.Facilities, l),
		handler.NewPayment(svc.Payments, l),
	)
}

func base(l *zap.Logger, lim Limits) *gin.Engine {
	lim = lim.withDefaults()
	r := gin.New()
	r.Use(
		mdw.RequestID(),
		mdw.Recovery(l),
		cors.Default(),
		mdw.RateLimitPerIP(rateOf(lim.RPS), lim.Burst),
		mdw.ConcurrencyLimit(lim.Concurrency),
		mdw.MaxBodyBytes(lim.MaxBody),
		mdw.Timeout(lim.Timeout),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	return r
}

func NewAPIEngine(l *zap.Logger, reg *Registry, lim Limits) *gin.Engine {
	r := base(l, lim)
	reg.MountAPI(r.Group("/api/v1"))
	return r
}
