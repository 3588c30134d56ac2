package service

import (
	"context"

	"go.uber.org/zap"

	"eco-waste-api/internal/domain"
)

// PaymentService 账单只增不改；状态流转合法性不在这里校验
type PaymentService struct {
	repo domain.PaymentRepository
	log  *zap.Logger
}

func NewPaymentService(r domain.PaymentRepository, l *zap.Logger) *PaymentService {
	return &PaymentService{repo: r, log: l.Named("payment")}
}

func (s *PaymentService) Create(ctx context.Context, in domain.NewPayment) (domain.Payment, error) {
	p, err := s.repo.Create(ctx, in)
	observe("payment", "create", err)
	if err != nil {
		return domain.Payment{}, err
	}
	s.log.Info("payment created",
		zap.Int64("id", p.ID),
		zap.String("amount", p.Amount),
		zap.String("status", string(p.Status)),
	)
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, id int64) (domain.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	observe("payment", "get", err)
	return p, err
}

func (s *PaymentService) List(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error) {
	ps, err := s.repo.List(ctx, f)
	observe("payment", "list", err)
	return ps, err
}
