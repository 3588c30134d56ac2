package payment

import (
	"time"

	"eco-waste-api/internal/domain"
)

// date / due_date 以 YYYY-MM-DD 文本存储：字典序即时间序，且各驱动读回一致。
// amount 按原文存储（最多 8 位整数 + 2 位小数），numeric 列会把 "10" 读回成 "10.00"
type PaymentModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Amount      string  `gorm:"size:13;not null"`
	Date        string  `gorm:"size:10;not null;index"`
	Description *string `gorm:"type:text"`
	Status      string  `gorm:"size:16;not null;index"`
	Type        string  `gorm:"size:16;not null"`
	Method      string  `gorm:"size:16;not null"`
	Reference   *string `gorm:"size:64"`
	DueDate     *string `gorm:"size:10"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;precision:6;not null"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m PaymentModel) ToDomain() domain.Payment {
	return domain.Payment{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Status:      domain.PaymentStatus(m.Status),
		Type:        domain.PaymentType(m.Type),
		Method:      domain.PaymentMethod(m.Method),
		Reference:   m.Reference,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// FromNew 入参需先经过 WithDefaults
func FromNew(in domain.NewPayment, now time.Time) PaymentModel {
	return PaymentModel{
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		Status:      string(in.Status),
		Type:        string(in.Type),
		Method:      string(in.Method),
		Reference:   in.Reference,
		DueDate:     in.DueDate,
		CreatedAt:   now,
	}
}
