package repo

import (
	"context"
	"sync"

	"eco-waste-api/internal/domain"
)

type MemoryUserRepo struct {
	mu   sync.RWMutex
	seq  *Sequence
	rows *table[domain.User]
}

var _ domain.UserRepository = (*MemoryUserRepo)(nil)

func (r *MemoryUserRepo) Create(_ context.Context, in domain.NewUser) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// 唯一性在同一把锁内线性扫描，避免并发注册同名
	if _, ok := r.findByUsername(in.Username); ok {
		return domain.User{}, domain.ErrDuplicate
	}
	u := domain.User{ID: r.seq.Next(CollectionUsers), Username: in.Username, Password: in.Password}
	r.rows.put(u.ID, u)
	return u, nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	if id <= 0 {
		return domain.User{}, domain.InvalidID(id)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.rows.get(id)
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.findByUsername(username)
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepo) findByUsername(username string) (domain.User, bool) {
	var (
		found domain.User
		ok    bool
	)
	r.rows.scan(func(u domain.User) bool {
		if u.Username == username {
			found, ok = u, true
			return false
		}
		return true
	})
	return found, ok
}
