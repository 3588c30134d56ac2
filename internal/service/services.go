// Package service 是 handler 与仓储之间的薄应用层：记录日志、打点、处理密码。
package service

import (
	"go.uber.org/zap"

	"eco-waste-api/internal/domain"
)

type Services struct {
	Users      *UserService
	Payments   *PaymentService
	Facilities *FacilityService
}

func New(repos domain.Repositories, l *zap.Logger) *Services {
	return &Services{
		Users:      NewUserService(repos.Users, l),
		Payments:   NewPaymentService(repos.Payments, l),
		Facilities: NewFacilityService(repos.Facilities, l),
	}
}
