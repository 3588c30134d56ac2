package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eco-waste-api/internal/domain"
)

func str(s string) *string    { return &s }
func f64(v float64) *float64 { return &v }

// fakeNow 每次调用前进 1 秒
func fakeNow() func() time.Time {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	n := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func newFacility(name string, d domain.District) domain.NewFacility {
	return domain.NewFacility{
		Name:      name,
		Category:  domain.CategoryRecyclingCenter,
		Latitude:  f64(4.89),
		Longitude: f64(114.94),
		Address:   "Jalan " + name,
		District:  d,
	}
}

func TestMemoryFacilityCreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{Now: fakeNow()})

	a, err := repos.Facilities.Create(ctx, newFacility("A", domain.DistrictBelait))
	require.NoError(t, err)
	b, err := repos.Facilities.Create(ctx, newFacility("B", domain.DistrictTutong))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.True(t, a.IsActive)
	assert.Equal(t, []string{}, a.AcceptedMaterials)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.True(t, b.CreatedAt.After(a.CreatedAt))

	got, err := repos.Facilities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestMemoryFacilityCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})

	in := newFacility("A", domain.DistrictBelait)
	in.Latitude = f64(100)
	_, err := repos.Facilities.Create(ctx, in)
	assert.True(t, domain.IsValidation(err))

	all, err := repos.Facilities.List(ctx, domain.FacilityFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, all)

	// 失败的创建不消耗 id
	ok, err := repos.Facilities.Create(ctx, newFacility("B", domain.DistrictBelait))
	require.NoError(t, err)
	assert.Equal(t, int64(1), ok.ID)
}

func TestMemoryFacilityUpdatePartial(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{Now: fakeNow()})

	in := newFacility("A", domain.DistrictBelait)
	in.Phone = str("+673 111")
	in.AcceptedMaterials = []string{"Paper"}
	created, err := repos.Facilities.Create(ctx, in)
	require.NoError(t, err)

	name := "Renamed"
	updated, err := repos.Facilities.Update(ctx, created.ID, domain.FacilityPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, created.Address, updated.Address)
	assert.Equal(t, "+673 111", *updated.Phone)
	assert.Equal(t, []string{"Paper"}, updated.AcceptedMaterials)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	got, err := repos.Facilities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestMemoryFacilityUpdateInvalidLeavesRecord(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{Now: fakeNow()})
	created, err := repos.Facilities.Create(ctx, newFacility("A", domain.DistrictBelait))
	require.NoError(t, err)

	name := "B"
	lat := 120.0
	_, err = repos.Facilities.Update(ctx, created.ID, domain.FacilityPatch{Name: &name, Latitude: &lat})
	assert.True(t, domain.IsValidation(err))

	got, err := repos.Facilities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryFacilityNotFound(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})

	_, err := repos.Facilities.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "x"
	_, err = repos.Facilities.Update(ctx, 999999, domain.FacilityPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repos.Facilities.SoftDelete(ctx, 999999), domain.ErrNotFound)

	_, err = repos.Facilities.GetByID(ctx, 0)
	assert.True(t, domain.IsValidation(err))
	assert.True(t, domain.IsValidation(repos.Facilities.SoftDelete(ctx, -1)))
}

func TestMemoryFacilitySoftDeleteVisibility(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{Now: fakeNow()})
	a, err := repos.Facilities.Create(ctx, newFacility("A", domain.DistrictBelait))
	require.NoError(t, err)
	b, err := repos.Facilities.Create(ctx, newFacility("B", domain.DistrictBelait))
	require.NoError(t, err)

	require.NoError(t, repos.Facilities.SoftDelete(ctx, a.ID))
	// 重复软删是幂等的
	require.NoError(t, repos.Facilities.SoftDelete(ctx, a.ID))

	active, err := repos.Facilities.List(ctx, domain.FacilityFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	all, err := repos.Facilities.List(ctx, domain.FacilityFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)

	got, err := repos.Facilities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, a.Name, got.Name)

	on := true
	back, err := repos.Facilities.Update(ctx, a.ID, domain.FacilityPatch{IsActive: &on})
	require.NoError(t, err)
	assert.True(t, back.IsActive)
}

func TestMemoryFacilityReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})
	in := newFacility("A", domain.DistrictBelait)
	in.AcceptedMaterials = []string{"Paper"}
	in.Phone = str("1")
	created, err := repos.Facilities.Create(ctx, in)
	require.NoError(t, err)

	created.AcceptedMaterials[0] = "Glass"
	*created.Phone = "2"
	in.AcceptedMaterials[0] = "Metal"

	got, err := repos.Facilities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paper"}, got.AcceptedMaterials)
	assert.Equal(t, "1", *got.Phone)

	list, err := repos.Facilities.List(ctx, domain.FacilityFilter{})
	require.NoError(t, err)
	list[0].Name = "mutated"
	again, err := repos.Facilities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)
}

func TestMemoryFacilityUpdatedAtNeverGoesBack(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	calls := 0
	// 第二次调用时钟回拨
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 2 {
			return t0.Add(-time.Hour)
		}
		return t0
	}
	repos := NewMemory(MemoryOptions{Now: now})
	created, err := repos.Facilities.Create(ctx, newFacility("A", domain.DistrictBelait))
	require.NoError(t, err)

	name := "B"
	updated, err := repos.Facilities.Update(ctx, created.ID, domain.FacilityPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func newPayment(amount, date string) domain.NewPayment {
	return domain.NewPayment{Amount: amount, Date: date}
}

func TestMemoryPaymentDefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{Now: fakeNow()})

	in := newPayment("125.50", "2025-01-15")
	in.Description = str("Monthly collection")
	in.DueDate = str("2025-01-31")
	p, err := repos.Payments.Create(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "125.50", p.Amount)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, domain.PaymentTypePickup, p.Type)
	assert.Equal(t, domain.MethodCard, p.Method)
	assert.Nil(t, p.Reference)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repos.Payments.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = repos.Payments.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryPaymentRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})
	_, err := repos.Payments.Create(ctx, newPayment("12.345", "2025-01-01"))
	assert.True(t, domain.IsValidation(err))

	list, err := repos.Payments.List(ctx, domain.PaymentFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryPaymentListOrdering(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})
	for _, d := range []string{"2025-01-01", "2025-01-15", "2025-01-10", "2025-01-15"} {
		_, err := repos.Payments.Create(ctx, newPayment("1", d))
		require.NoError(t, err)
	}

	list, err := repos.Payments.List(ctx, domain.PaymentFilter{})
	require.NoError(t, err)
	got := make([]int64, 0, len(list))
	for _, p := range list {
		got = append(got, p.ID)
	}
	// 同一天按插入顺序
	assert.Equal(t, []int64{2, 4, 3, 1}, got)
}

func TestMemoryPaymentListFilters(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})
	_, _, err := Seed(ctx, repos)
	require.NoError(t, err)

	completed, err := repos.Payments.List(ctx, domain.PaymentFilter{Status: domain.PaymentCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 4)
	for _, p := range completed {
		assert.Equal(t, domain.PaymentCompleted, p.Status)
	}

	cash, err := repos.Payments.List(ctx, domain.PaymentFilter{Method: domain.MethodCash})
	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.Equal(t, "90.00", cash[0].Amount)

	search, err := repos.Payments.List(ctx, domain.PaymentFilter{Search: "pickup"})
	require.NoError(t, err)
	assert.Len(t, search, 2)
}

func TestMemoryUserUniqueness(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})

	u, err := repos.Users.Create(ctx, domain.NewUser{Username: "alice", Password: "hash-123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = repos.Users.Create(ctx, domain.NewUser{Username: "alice", Password: "other-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	byName, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, byName)

	_, err = repos.Users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repos.Users.GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryUserConcurrentSignupSameName(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})

	const n = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		okCount int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repos.Users.Create(ctx, domain.NewUser{Username: "race", Password: "secret1"}); err == nil {
				mu.Lock()
				okCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, okCount)
}

func TestMemoryConcurrentCreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(MemoryOptions{})
	seed, err := repos.Facilities.Create(ctx, newFacility("Base", domain.DistrictBelait))
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f, err := repos.Facilities.Create(ctx, newFacility("F", domain.DistrictTutong))
			if err == nil {
				ids <- f.ID
			}
		}()
		go func() {
			defer wg.Done()
			name := "Base2"
			_, _ = repos.Facilities.Update(ctx, seed.ID, domain.FacilityPatch{Name: &name})
			_, _ = repos.Facilities.List(ctx, domain.FacilityFilter{})
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	all, err := repos.Facilities.List(ctx, domain.FacilityFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, n+1)
}

func TestMemorySharedSequence(t *testing.T) {
	ctx := context.Background()
	seq := NewSequence()
	a := NewMemory(MemoryOptions{Sequence: seq})
	b := NewMemory(MemoryOptions{Sequence: seq})

	p1, err := a.Payments.Create(ctx, newPayment("1", "2025-01-01"))
	require.NoError(t, err)
	p2, err := b.Payments.Create(ctx, newPayment("1", "2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)
	assert.Equal(t, int64(2), seq.Peek(CollectionPayments))
}
