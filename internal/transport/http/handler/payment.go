package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/service"
	"eco-waste-api/internal/transport/http/ez"
)

// Payment 账单只有创建和列表
type Payment struct {
	svc *service.PaymentService
	log *zap.Logger
}

func NewPayment(s *service.PaymentService, l *zap.Logger) *Payment {
	return &Payment{svc: s, log: l}
}

func (h *Payment) Priority() int { return 30 }

func (h *Payment) MountAPI(g *gin.RouterGroup) {
	ez.Crud(ez.CrudConfig[domain.Payment, domain.NewPayment, struct{}, domain.PaymentFilter]{
		EZ:     ez.New(g, h.log),
		Path:   "/payments",
		Create: h.svc.Create,
		List:   h.svc.List,
	})
}

func (h *Payment) MountAdmin(g *gin.RouterGroup) {
	ez.Crud(ez.CrudConfig[domain.Payment, domain.NewPayment, struct{}, domain.PaymentFilter]{
		EZ:   ez.New(g, h.log),
		Path: "/payments",
		Auth: true,
		Get:  h.svc.Get,
		List: h.svc.List,
	})
}
