package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

var _ domain.UserRepository = (*UserRepo)(nil)

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, in domain.NewUser) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}
	m := user.FromNew(in)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDupKey(err) {
			return domain.User{}, domain.ErrDuplicate
		}
		return domain.User{}, domain.Internal("user.create", err)
	}
	return m.ToDomain(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	if id <= 0 {
		return domain.User{}, domain.InvalidID(id)
	}
	return r.first(ctx, "user.get", "id = ?", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.first(ctx, "user.get_by_username", "username = ?", username)
}

func (r *UserRepo) first(ctx context.Context, op, cond string, arg any) (domain.User, error) {
	var m user.UserModel
	err := r.db.WithContext(ctx).First(&m, cond, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, domain.Internal(op, err)
	}
	return m.ToDomain(), nil
}
