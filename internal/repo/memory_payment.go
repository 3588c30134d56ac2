package repo

import (
	"context"
	"sync"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/query"
)

type MemoryPaymentRepo struct {
	mu   sync.RWMutex
	seq  *Sequence
	clk  *clock
	rows *table[domain.Payment]
}

var _ domain.PaymentRepository = (*MemoryPaymentRepo)(nil)

func (r *MemoryPaymentRepo) Create(_ context.Context, in domain.NewPayment) (domain.Payment, error) {
	if err := in.Validate(); err != nil {
		return domain.Payment{}, err
	}
	in = in.WithDefaults()
	r.mu.Lock()
	defer r.mu.Unlock()
	p := domain.Payment{
		ID:          r.seq.Next(CollectionPayments),
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		Status:      in.Status,
		Type:        in.Type,
		Method:      in.Method,
		Reference:   in.Reference,
		DueDate:     in.DueDate,
		CreatedAt:   r.clk.Now(),
	}.Clone()
	r.rows.put(p.ID, p)
	return p.Clone(), nil
}

func (r *MemoryPaymentRepo) GetByID(_ context.Context, id int64) (domain.Payment, error) {
	if id <= 0 {
		return domain.Payment{}, domain.InvalidID(id)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rows.get(id)
	if !ok {
		return domain.Payment{}, domain.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *MemoryPaymentRepo) List(_ context.Context, f domain.PaymentFilter) ([]domain.Payment, error) {
	match := query.Payments(f)
	r.mu.RLock()
	out := make([]domain.Payment, 0, len(r.rows.order))
	r.rows.scan(func(p domain.Payment) bool {
		if match(p) {
			out = append(out, p.Clone())
		}
		return true
	})
	r.mu.RUnlock()
	query.SortPaymentsByDateDesc(out)
	return out, nil
}
