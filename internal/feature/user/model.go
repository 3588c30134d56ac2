package user

import "eco-waste-api/internal/domain"

type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;size:64;not null"`
	Password string `gorm:"size:100;not null"`
}

func (UserModel) TableName() string { return "users" }

func (m UserModel) ToDomain() domain.User {
	return domain.User{ID: m.ID, Username: m.Username, Password: m.Password}
}

func FromNew(in domain.NewUser) UserModel {
	return UserModel{Username: in.Username, Password: in.Password}
}
