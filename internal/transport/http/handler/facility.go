package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/service"
	"eco-waste-api/internal/transport/http/ez"
)

// Facility 回收点：公开端只看 active，管理端可带 include_inactive
type Facility struct {
	svc *service.FacilityService
	log *zap.Logger
}

func NewFacility(s *service.FacilityService, l *zap.Logger) *Facility {
	return &Facility{svc: s, log: l}
}

func (h *Facility) Priority() int { return 20 }

func (h *Facility) MountAPI(g *gin.RouterGroup) {
	ez.Crud(ez.CrudConfig[domain.Facility, domain.NewFacility, domain.FacilityPatch, domain.FacilityFilter]{
		EZ:     ez.New(g, h.log),
		Path:   "/facilities",
		Create: h.svc.Create,
		Get:    h.svc.Get,
		List:   h.svc.List,
		Update: h.svc.Update,
		Delete: h.svc.SoftDelete,
		Hooks: ez.CrudHooks[domain.FacilityFilter]{
			ScopeList: func(_ *gin.Context, f *domain.FacilityFilter) { f.IncludeInactive = false },
		},
	})
}

func (h *Facility) MountAdmin(g *gin.RouterGroup) {
	ez.Crud(ez.CrudConfig[domain.Facility, domain.NewFacility, domain.FacilityPatch, domain.FacilityFilter]{
		EZ:   ez.New(g, h.log),
		Path: "/facilities",
		Auth: true,
		List: h.svc.List,
	})
}
