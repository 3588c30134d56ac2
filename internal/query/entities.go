package query

import (
	"sort"
	"time"

	"eco-waste-api/internal/domain"
)

func Facilities(f domain.FacilityFilter) Predicate[domain.Facility] {
	ps := []Predicate[domain.Facility]{
		EqualIfSet(f.Category, func(x domain.Facility) domain.Category { return x.Category }),
		EqualIfSet(f.District, func(x domain.Facility) domain.District { return x.District }),
		ContainsFold(f.Search,
			func(x domain.Facility) string { return x.Name },
			func(x domain.Facility) string { return x.Address },
			func(x domain.Facility) string { return deref(x.Description) },
		),
	}
	if !f.IncludeInactive {
		ps = append(ps, func(x domain.Facility) bool { return x.IsActive })
	}
	return All(ps...)
}

func Payments(f domain.PaymentFilter) Predicate[domain.Payment] {
	return All(
		EqualIfSet(f.Status, func(x domain.Payment) domain.PaymentStatus { return x.Status }),
		EqualIfSet(f.Type, func(x domain.Payment) domain.PaymentType { return x.Type }),
		EqualIfSet(f.Method, func(x domain.Payment) domain.PaymentMethod { return x.Method }),
		ContainsFold(f.Search,
			func(x domain.Payment) string { return deref(x.Description) },
			func(x domain.Payment) string { return deref(x.Reference) },
		),
	)
}

// SortPaymentsByDateDesc 稳定排序：同一天的记录保持原有（插入）顺序
func SortPaymentsByDateDesc(ps []domain.Payment) {
	sort.SliceStable(ps, func(i, j int) bool {
		return dateKey(ps[i].Date).After(dateKey(ps[j].Date))
	})
}

func dateKey(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
