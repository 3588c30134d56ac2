package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"eco-waste-api/internal/domain"
	"eco-waste-api/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserService(r domain.UserRepository, l *zap.Logger) *UserService {
	return &UserService{repo: r, log: l.Named("user")}
}

// Signup 先按明文规则校验，再哈希入库
func (s *UserService) Signup(ctx context.Context, in domain.NewUser) (domain.User, error) {
	if err := in.Validate(); err != nil {
		observe("user", "create", err)
		return domain.User{}, err
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		err = domain.Internal("user.hash", err)
		observe("user", "create", err)
		return domain.User{}, err
	}
	u, err := s.repo.Create(ctx, domain.NewUser{Username: in.Username, Password: hash})
	observe("user", "create", err)
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info("user created", zap.Int64("id", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Login 用户不存在与密码错误返回同一个错误
func (s *UserService) Login(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	observe("user", "get_by_username", err)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if !utils.CheckPassword(password, u.Password) {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	observe("user", "get", err)
	return u, err
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	observe("user", "get_by_username", err)
	return u, err
}
