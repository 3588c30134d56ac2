package service

import (
	"context"

	"go.uber.org/zap"

	"eco-waste-api/internal/domain"
)

type FacilityService struct {
	repo domain.FacilityRepository
	log  *zap.Logger
}

func NewFacilityService(r domain.FacilityRepository, l *zap.Logger) *FacilityService {
	return &FacilityService{repo: r, log: l.Named("facility")}
}

func (s *FacilityService) Create(ctx context.Context, in domain.NewFacility) (domain.Facility, error) {
	f, err := s.repo.Create(ctx, in)
	observe("facility", "create", err)
	if err != nil {
		return domain.Facility{}, err
	}
	s.log.Info("facility created", zap.Int64("id", f.ID), zap.String("name", f.Name), zap.String("district", string(f.District)))
	return f, nil
}

func (s *FacilityService) Get(ctx context.Context, id int64) (domain.Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	observe("facility", "get", err)
	return f, err
}

func (s *FacilityService) List(ctx context.Context, filter domain.FacilityFilter) ([]domain.Facility, error) {
	fs, err := s.repo.List(ctx, filter)
	observe("facility", "list", err)
	return fs, err
}

func (s *FacilityService) Update(ctx context.Context, id int64, patch domain.FacilityPatch) (domain.Facility, error) {
	f, err := s.repo.Update(ctx, id, patch)
	observe("facility", "update", err)
	if err != nil {
		return domain.Facility{}, err
	}
	s.log.Info("facility updated", zap.Int64("id", id), zap.Bool("active", f.IsActive))
	return f, nil
}

func (s *FacilityService) SoftDelete(ctx context.Context, id int64) error {
	err := s.repo.SoftDelete(ctx, id)
	observe("facility", "soft_delete", err)
	if err == nil {
		s.log.Info("facility deactivated", zap.Int64("id", id))
	}
	return err
}
