package domain

import (
	"context"
	"time"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type PaymentType string

const (
	PaymentTypePickup       PaymentType = "pickup"
	PaymentTypeSubscription PaymentType = "subscription"
	PaymentTypePenalty      PaymentType = "penalty"
	PaymentTypeRefund       PaymentType = "refund"
)

type PaymentMethod string

const (
	MethodCard          PaymentMethod = "card"
	MethodBankTransfer  PaymentMethod = "bank_transfer"
	MethodCash          PaymentMethod = "cash"
	MethodDigitalWallet PaymentMethod = "digital_wallet"
)

// Payment 创建后不可变；状态流转不在存储层校验
type Payment struct {
	ID          int64         `json:"id"`
	Amount      string        `json:"amount"` // 定点小数字符串，最多两位小数
	Date        string        `json:"date"`   // YYYY-MM-DD
	Description *string       `json:"description"`
	Status      PaymentStatus `json:"status"`
	Type        PaymentType   `json:"type"`
	Method      PaymentMethod `json:"method"`
	Reference   *string       `json:"reference"`
	DueDate     *string       `json:"dueDate"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type NewPayment struct {
	Amount      string        `json:"amount"      binding:"required,decimal2"`
	Date        string        `json:"date"        binding:"required,isodate"`
	Description *string       `json:"description" binding:"omitempty,max=500"`
	Status      PaymentStatus `json:"status"      binding:"omitempty,oneof=pending completed failed cancelled"`
	Type        PaymentType   `json:"type"        binding:"omitempty,oneof=pickup subscription penalty refund"`
	Method      PaymentMethod `json:"method"      binding:"omitempty,oneof=card bank_transfer cash digital_wallet"`
	Reference   *string       `json:"reference"   binding:"omitempty,max=64"`
	DueDate     *string       `json:"dueDate"     binding:"omitempty,isodate"`
}

func (in NewPayment) Validate() error { return Validate(in) }

// WithDefaults 补齐缺省枚举：pending / pickup / card
func (in NewPayment) WithDefaults() NewPayment {
	if in.Status == "" {
		in.Status = PaymentPending
	}
	if in.Type == "" {
		in.Type = PaymentTypePickup
	}
	if in.Method == "" {
		in.Method = MethodCard
	}
	return in
}

// PaymentFilter 零值字段不参与过滤
type PaymentFilter struct {
	Status PaymentStatus `form:"status" binding:"omitempty,oneof=pending completed failed cancelled"`
	Type   PaymentType   `form:"type"   binding:"omitempty,oneof=pickup subscription penalty refund"`
	Method PaymentMethod `form:"method" binding:"omitempty,oneof=card bank_transfer cash digital_wallet"`
	Search string        `form:"q"      binding:"omitempty,max=100"`
}

func (f PaymentFilter) IsZero() bool { return f == PaymentFilter{} }

// PaymentRepository 列表按 date 倒序，同日期保持插入顺序
type PaymentRepository interface {
	Create(ctx context.Context, in NewPayment) (Payment, error)
	GetByID(ctx context.Context, id int64) (Payment, error)
	List(ctx context.Context, f PaymentFilter) ([]Payment, error)
}
