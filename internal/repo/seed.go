package repo

import (
	"context"
	"fmt"

	"eco-waste-api/internal/domain"
)

func strp(s string) *string { return &s }
func f64p(v float64) *float64 { return &v }

// SeedPayments 示例账单，覆盖全部状态 / 类型 / 支付方式
func SeedPayments() []domain.NewPayment {
	return []domain.NewPayment{
		{Amount: "125.50", Date: "2025-01-15", Description: strp("Monthly waste collection service"), Status: domain.PaymentCompleted, Type: domain.PaymentTypeSubscription, Method: domain.MethodCard, Reference: strp("TXN001234"), DueDate: strp("2025-01-15")},
		{Amount: "75.00", Date: "2025-01-12", Description: strp("Recycling bonus payment"), Status: domain.PaymentPending, Type: domain.PaymentTypeRefund, Method: domain.MethodBankTransfer, Reference: strp("REF567890"), DueDate: strp("2025-01-20")},
		{Amount: "200.00", Date: "2025-01-10", Description: strp("Bulk waste disposal fee"), Status: domain.PaymentCompleted, Type: domain.PaymentTypePickup, Method: domain.MethodDigitalWallet, Reference: strp("TXN002468"), DueDate: strp("2025-01-10")},
		{Amount: "45.25", Date: "2025-01-08", Description: strp("Electronic waste processing"), Status: domain.PaymentFailed, Type: domain.PaymentTypePickup, Method: domain.MethodCard, Reference: strp("TXN003691"), DueDate: strp("2025-01-08")},
		{Amount: "90.00", Date: "2025-01-05", Description: strp("Commercial waste pickup"), Status: domain.PaymentCompleted, Type: domain.PaymentTypePickup, Method: domain.MethodCash, Reference: strp("TXN004820"), DueDate: strp("2025-01-05")},
		{Amount: "50.00", Date: "2025-01-03", Description: strp("Late payment penalty"), Status: domain.PaymentPending, Type: domain.PaymentTypePenalty, Method: domain.MethodCard, Reference: strp("PEN001234"), DueDate: strp("2025-01-25")},
		{Amount: "180.00", Date: "2025-01-01", Description: strp("Quarterly subscription fee"), Status: domain.PaymentCompleted, Type: domain.PaymentTypeSubscription, Method: domain.MethodBankTransfer, Reference: strp("SUB987654"), DueDate: strp("2025-01-01")},
		{Amount: "25.00", Date: "2024-12-28", Description: strp("Express pickup service"), Status: domain.PaymentCancelled, Type: domain.PaymentTypePickup, Method: domain.MethodDigitalWallet, Reference: strp("EXP147258"), DueDate: strp("2024-12-28")},
	}
}

func SeedFacilities() []domain.NewFacility {
	return []domain.NewFacility{
		{
			Name:              "Brunei Recycling Centre",
			Category:          domain.CategoryRecyclingCenter,
			Latitude:          f64p(4.8895),
			Longitude:         f64p(114.9420),
			Address:           "Jalan Sungai Kedayan, Bandar Seri Begawan",
			District:          domain.DistrictBruneiMuara,
			Phone:             strp("+673 2332211"),
			Email:             strp("info@bruneirecycling.bn"),
			Website:           strp("www.bruneirecycling.bn"),
			Description:       strp("Main recycling facility for paper, plastic, and metal materials"),
			OperatingHours:    strp("Monday-Friday: 8:00 AM - 5:00 PM, Saturday: 8:00 AM - 12:00 PM"),
			AcceptedMaterials: []string{"Paper", "Plastic", "Metal", "Glass"},
		},
		{
			Name:              "Seria Waste Collection Point",
			Category:          domain.CategoryCollectionFacility,
			Latitude:          f64p(4.6065),
			Longitude:         f64p(114.3247),
			Address:           "Jalan Tengah, Seria",
			District:          domain.DistrictBelait,
			Phone:             strp("+673 3223344"),
			Email:             strp("seria@wastemanagement.bn"),
			Description:       strp("Primary waste collection facility for Belait district"),
			OperatingHours:    strp("Daily: 7:00 AM - 6:00 PM"),
			AcceptedMaterials: []string{"General Waste", "Organic", "Recyclables"},
		},
		{
			Name:              "Tutong Drop-off Point",
			Category:          domain.CategoryDropOffPoint,
			Latitude:          f64p(4.8032),
			Longitude:         f64p(114.6491),
			Address:           "Pekan Tutong, Tutong",
			District:          domain.DistrictTutong,
			Phone:             strp("+673 4112233"),
			Description:       strp("Community drop-off point for recyclable materials"),
			OperatingHours:    strp("24/7 Access"),
			AcceptedMaterials: []string{"Paper", "Plastic", "Cans"},
		},
	}
}

// Seed 走正常的 Create 路径，种子数据与运行期数据共用同一 id 空间。
// 集合非空时跳过，数据库后端重启不会重复写入。
func Seed(ctx context.Context, repos domain.Repositories) (payments, facilities int, err error) {
	existingP, err := repos.Payments.List(ctx, domain.PaymentFilter{})
	if err != nil {
		return 0, 0, fmt.Errorf("seed: list payments: %w", err)
	}
	if len(existingP) == 0 {
		for _, in := range SeedPayments() {
			if _, err := repos.Payments.Create(ctx, in); err != nil {
				return payments, facilities, fmt.Errorf("seed: payment %q: %w", in.Amount, err)
			}
			payments++
		}
	}

	existingF, err := repos.Facilities.List(ctx, domain.FacilityFilter{IncludeInactive: true})
	if err != nil {
		return payments, 0, fmt.Errorf("seed: list facilities: %w", err)
	}
	if len(existingF) == 0 {
		for _, in := range SeedFacilities() {
			if _, err := repos.Facilities.Create(ctx, in); err != nil {
				return payments, facilities, fmt.Errorf("seed: facility %q: %w", in.Name, err)
			}
			facilities++
		}
	}
	return payments, facilities, nil
}
