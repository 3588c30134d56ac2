package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"eco-waste-api/internal/core/auth"
	mdw "eco-waste-api/internal/transport/http/middleware"
)

func rateOf(rps float64) rate.Limit { return rate.Limit(rps) }

// NewAdminEngine 管理端：/admin/v1 全部要求 JWT，/metrics 供 Prometheus 抓取
func NewAdminEngine(l *zap.Logger, reg *Registry, jwter *auth.JWTer, lim Limits) *gin.Engine {
	r := base(l, lim)
	r.GET("/metrics", mdw.MetricsHandler())

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter))
	reg.MountAdmin(admin)
	return r
}
