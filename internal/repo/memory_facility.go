package repo

import (
	"context"
	"sync"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/query"
)

type MemoryFacilityRepo struct {
	mu   sync.RWMutex
	seq  *Sequence
	clk  *clock
	rows *table[domain.Facility]
}

var _ domain.FacilityRepository = (*MemoryFacilityRepo)(nil)

func (r *MemoryFacilityRepo) Create(_ context.Context, in domain.NewFacility) (domain.Facility, error) {
	if err := in.Validate(); err != nil {
		return domain.Facility{}, err
	}
	f := in.Build()
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.seq.Next(CollectionFacilities)
	f.CreatedAt = r.clk.Now()
	f.UpdatedAt = f.CreatedAt
	r.rows.put(f.ID, f)
	return f.Clone(), nil
}

func (r *MemoryFacilityRepo) GetByID(_ context.Context, id int64) (domain.Facility, error) {
	if id <= 0 {
		return domain.Facility{}, domain.InvalidID(id)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.rows.get(id)
	if !ok {
		return domain.Facility{}, domain.ErrNotFound
	}
	return f.Clone(), nil
}

func (r *MemoryFacilityRepo) List(_ context.Context, filter domain.FacilityFilter) ([]domain.Facility, error) {
	match := query.Facilities(filter)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Facility, 0, len(r.rows.order))
	r.rows.scan(func(f domain.Facility) bool {
		if match(f) {
			out = append(out, f.Clone())
		}
		return true
	})
	return out, nil
}

func (r *MemoryFacilityRepo) Update(_ context.Context, id int64, patch domain.FacilityPatch) (domain.Facility, error) {
	if id <= 0 {
		return domain.Facility{}, domain.InvalidID(id)
	}
	// 先校验再加锁：失败时原记录保持不变
	if err := patch.Validate(); err != nil {
		return domain.Facility{}, err
	}
	return r.mutate(id, patch.Apply)
}

func (r *MemoryFacilityRepo) SoftDelete(_ context.Context, id int64) error {
	if id <= 0 {
		return domain.InvalidID(id)
	}
	_, err := r.mutate(id, func(f *domain.Facility) { f.IsActive = false })
	return err
}

// mutate 在副本上修改，刷新 updatedAt 后整体写回
func (r *MemoryFacilityRepo) mutate(id int64, fn func(*domain.Facility)) (domain.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows.get(id)
	if !ok {
		return domain.Facility{}, domain.ErrNotFound
	}
	next := cur.Clone()
	fn(&next)
	next.ID, next.CreatedAt = cur.ID, cur.CreatedAt
	next.UpdatedAt = r.clk.Now()
	if next.UpdatedAt.Before(cur.UpdatedAt) {
		next.UpdatedAt = cur.UpdatedAt
	}
	r.rows.put(id, next)
	return next.Clone(), nil
}
