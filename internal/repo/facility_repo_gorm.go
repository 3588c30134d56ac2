package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/feature/facility"
)

type FacilityRepo struct {
	db  *gorm.DB
	now func() time.Time
}

var _ domain.FacilityRepository = (*FacilityRepo)(nil)

func (r *FacilityRepo) Create(ctx context.Context, in domain.NewFacility) (domain.Facility, error) {
	if err := in.Validate(); err != nil {
		return domain.Facility{}, err
	}
	f := in.Build()
	f.CreatedAt = r.now()
	f.UpdatedAt = f.CreatedAt
	m := facility.FromDomain(f)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Facility{}, domain.Internal("facility.create", err)
	}
	return m.ToDomain(), nil
}

func (r *FacilityRepo) GetByID(ctx context.Context, id int64) (domain.Facility, error) {
	if id <= 0 {
		return domain.Facility{}, domain.InvalidID(id)
	}
	var m facility.FacilityModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Facility{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Facility{}, domain.Internal("facility.get", err)
	}
	return m.ToDomain(), nil
}

// List 无 ORDER BY 之外的排序要求，按 id（插入顺序）返回
func (r *FacilityRepo) List(ctx context.Context, f domain.FacilityFilter) ([]domain.Facility, error) {
	q := r.db.WithContext(ctx).Model(&facility.FacilityModel{})
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", string(f.Category))
	}
	if f.District != "" {
		q = q.Where("district = ?", string(f.District))
	}
	q = likeFold(q, f.Search, "name", "address", "description")

	var ms []facility.FacilityModel
	if err := q.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, domain.Internal("facility.list", err)
	}
	out := make([]domain.Facility, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ToDomain())
	}
	return out, nil
}

func (r *FacilityRepo) Update(ctx context.Context, id int64, patch domain.FacilityPatch) (domain.Facility, error) {
	if id <= 0 {
		return domain.Facility{}, domain.InvalidID(id)
	}
	if err := patch.Validate(); err != nil {
		return domain.Facility{}, err
	}
	return r.mutate(ctx, "facility.update", id, patch.Apply)
}

func (r *FacilityRepo) SoftDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.InvalidID(id)
	}
	_, err := r.mutate(ctx, "facility.soft_delete", id, func(f *domain.Facility) { f.IsActive = false })
	return err
}

// mutate 行锁读出 -> 内存合并 -> 整行写回；事务失败时行保持原样
func (r *FacilityRepo) mutate(ctx context.Context, op string, id int64, fn func(*domain.Facility)) (domain.Facility, error) {
	var out domain.Facility
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m facility.FacilityModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		cur := m.ToDomain()
		next := cur.Clone()
		fn(&next)
		next.ID, next.CreatedAt = cur.ID, cur.CreatedAt
		next.UpdatedAt = r.now()
		if next.UpdatedAt.Before(cur.UpdatedAt) {
			next.UpdatedAt = cur.UpdatedAt
		}
		nm := facility.FromDomain(next)
		if err := tx.Save(&nm).Error; err != nil {
			return err
		}
		out = nm.ToDomain()
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Facility{}, err
	}
	if err != nil {
		return domain.Facility{}, domain.Internal(op, err)
	}
	return out, nil
}
