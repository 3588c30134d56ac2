package repo

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"eco-waste-api/internal/core/cache"
	"eco-waste-api/internal/domain"
)

const keyPaymentsAll = "payments:all"

func facilityKey(id int64) string { return "facility:" + strconv.FormatInt(id, 10) }

// WithCache 给仓储套上 redis 读穿缓存：设施点查 + 无过滤的账单列表
func WithCache(repos domain.Repositories, c *cache.Cache, ttl time.Duration, l *zap.Logger) domain.Repositories {
	if c == nil {
		return repos
	}
	repos.Facilities = &CachedFacilityRepo{FacilityRepository: repos.Facilities, c: c, ttl: ttl, log: l}
	repos.Payments = &CachedPaymentRepo{PaymentRepository: repos.Payments, c: c, ttl: ttl, log: l}
	return repos
}

type CachedFacilityRepo struct {
	domain.FacilityRepository
	c   *cache.Cache
	ttl time.Duration
	log *zap.Logger
}

func (r *CachedFacilityRepo) GetByID(ctx context.Context, id int64) (domain.Facility, error) {
	if id <= 0 {
		return domain.Facility{}, domain.InvalidID(id)
	}
	return cache.GetOrLoadJSON(r.c, ctx, facilityKey(id), r.ttl, func(ctx context.Context) (domain.Facility, error) {
		return r.FacilityRepository.GetByID(ctx, id)
	})
}

func (r *CachedFacilityRepo) Update(ctx context.Context, id int64, patch domain.FacilityPatch) (domain.Facility, error) {
	f, err := r.FacilityRepository.Update(ctx, id, patch)
	if err == nil {
		r.invalidate(ctx, facilityKey(id))
	}
	return f, err
}

func (r *CachedFacilityRepo) SoftDelete(ctx context.Context, id int64) error {
	err := r.FacilityRepository.SoftDelete(ctx, id)
	if err == nil {
		r.invalidate(ctx, facilityKey(id))
	}
	return err
}

func (r *CachedFacilityRepo) invalidate(ctx context.Context, keys ...string) {
	if err := r.c.Invalidate(ctx, keys...); err != nil {
		r.log.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

type CachedPaymentRepo struct {
	domain.PaymentRepository
	c   *cache.Cache
	ttl time.Duration
	log *zap.Logger
}

func (r *CachedPaymentRepo) List(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error) {
	if !f.IsZero() {
		return r.PaymentRepository.List(ctx, f)
	}
	return cache.GetOrLoadJSON(r.c, ctx, keyPaymentsAll, r.ttl, func(ctx context.Context) ([]domain.Payment, error) {
		return r.PaymentRepository.List(ctx, f)
	})
}

func (r *CachedPaymentRepo) Create(ctx context.Context, in domain.NewPayment) (domain.Payment, error) {
	p, err := r.PaymentRepository.Create(ctx, in)
	if err == nil {
		if e := r.c.Invalidate(ctx, keyPaymentsAll); e != nil {
			r.log.Warn("cache invalidate failed", zap.String("key", keyPaymentsAll), zap.Error(e))
		}
	}
	return p, err
}
