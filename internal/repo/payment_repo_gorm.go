package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/feature/payment"
)

type PaymentRepo struct {
	db  *gorm.DB
	now func() time.Time
}

var _ domain.PaymentRepository = (*PaymentRepo)(nil)

func (r *PaymentRepo) Create(ctx context.Context, in domain.NewPayment) (domain.Payment, error) {
	if err := in.Validate(); err != nil {
		return domain.Payment{}, err
	}
	m := payment.FromNew(in.WithDefaults(), r.now())
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Payment{}, domain.Internal("payment.create", err)
	}
	return m.ToDomain(), nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	if id <= 0 {
		return domain.Payment{}, domain.InvalidID(id)
	}
	var m payment.PaymentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Payment{}, domain.Internal("payment.get", err)
	}
	return m.ToDomain(), nil
}

// List 按 date 倒序；同日期按 id 升序，即插入顺序
func (r *PaymentRepo) List(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx).Model(&payment.PaymentModel{})
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}
	if f.Method != "" {
		q = q.Where("method = ?", string(f.Method))
	}
	q = likeFold(q, f.Search, "description", "reference")

	var ms []payment.PaymentModel
	if err := q.Order("date DESC").Order("id ASC").Find(&ms).Error; err != nil {
		return nil, domain.Internal("payment.list", err)
	}
	out := make([]domain.Payment, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ToDomain())
	}
	return out, nil
}
