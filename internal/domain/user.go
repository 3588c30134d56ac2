package domain

import "context"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt 哈希，不对外输出
}

// NewUser 注册入参；Password 进入存储层前已由 service 层哈希
type NewUser struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,maxbytes=72"`
}

func (in NewUser) Validate() error { return Validate(in) }

// UserRepository 用户只支持创建与点查，没有列表和删除
type UserRepository interface {
	Create(ctx context.Context, in NewUser) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
