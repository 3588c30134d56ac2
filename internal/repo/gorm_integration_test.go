//go:build integration

package repo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eco-waste-api/internal/core/database"
	"eco-waste-api/internal/domain"
)

// 需要一个可写的 postgres：TEST_POSTGRES_DSN="host=... dbname=ecowaste_test ..."
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	db, err := database.NewGorm(database.Opts{Driver: "postgres", DSN: dsn, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE users, payments, facilities RESTART IDENTITY").Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGormFacilityLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewGorm(openTestDB(t), fakeNow())

	in := newFacility("A", domain.DistrictBelait)
	in.AcceptedMaterials = []string{"Paper", "Glass"}
	a, err := repos.Facilities.Create(ctx, in)
	require.NoError(t, err)
	b, err := repos.Facilities.Create(ctx, newFacility("100%_Recycle", domain.DistrictTutong))
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
	assert.True(t, a.IsActive)

	off := false
	c, err := repos.Facilities.Create(ctx, domain.NewFacility{
		Name: "C", Category: domain.CategoryDropOffPoint, Latitude: f64(0), Longitude: f64(0),
		Address: "x", District: domain.DistrictBelait, IsActive: &off,
	})
	require.NoError(t, err)
	assert.False(t, c.IsActive)

	name := "Renamed"
	up, err := repos.Facilities.Update(ctx, a.ID, domain.FacilityPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", up.Name)
	assert.Equal(t, []string{"Paper", "Glass"}, up.AcceptedMaterials)
	assert.True(t, up.UpdatedAt.After(a.UpdatedAt))

	lat := 200.0
	_, err = repos.Facilities.Update(ctx, a.ID, domain.FacilityPatch{Latitude: &lat})
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, repos.Facilities.SoftDelete(ctx, a.ID))
	active, err := repos.Facilities.List(ctx, domain.FacilityFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	all, err := repos.Facilities.List(ctx, domain.FacilityFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// LIKE 通配符按字面匹配
	lit, err := repos.Facilities.List(ctx, domain.FacilityFilter{Search: "0%_r"})
	require.NoError(t, err)
	require.Len(t, lit, 1)
	assert.Equal(t, b.ID, lit[0].ID)
	none, err := repos.Facilities.List(ctx, domain.FacilityFilter{Search: "%"})
	require.NoError(t, err)
	assert.Len(t, none, 1)

	_, err = repos.Facilities.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repos.Facilities.SoftDelete(ctx, 999999), domain.ErrNotFound)
}

func TestGormPaymentsOrderAndFilters(t *testing.T) {
	ctx := context.Background()
	repos := NewGorm(openTestDB(t), nil)
	_, _, err := Seed(ctx, repos)
	require.NoError(t, err)

	extra, err := repos.Payments.Create(ctx, domain.NewPayment{Amount: "9.99", Date: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, extra.Status)

	list, err := repos.Payments.List(ctx, domain.PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, list, 9)
	assert.Equal(t, "125.50", list[0].Amount)
	assert.Equal(t, extra.ID, list[1].ID)
	assert.Equal(t, "2024-12-28", list[8].Date)

	completed, err := repos.Payments.List(ctx, domain.PaymentFilter{Status: domain.PaymentCompleted, Search: "FEE"})
	require.NoError(t, err)
	assert.Len(t, completed, 2)
}

// 读回的实体与 Create 返回值逐字段一致：金额原文、微秒 UTC 时间
func TestGormRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := NewGorm(openTestDB(t), nil)

	p, err := repos.Payments.Create(ctx, domain.NewPayment{Amount: "10", Date: "2025-01-01", Reference: str("R1")})
	require.NoError(t, err)
	gotP, err := repos.Payments.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, gotP)
	assert.Equal(t, "10", gotP.Amount)

	in := newFacility("Round", domain.DistrictTutong)
	in.AcceptedMaterials = []string{"Paper"}
	in.Email = str("a@b.bn")
	f, err := repos.Facilities.Create(ctx, in)
	require.NoError(t, err)
	gotF, err := repos.Facilities.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f, gotF)

	name := "Round 2"
	up, err := repos.Facilities.Update(ctx, f.ID, domain.FacilityPatch{Name: &name})
	require.NoError(t, err)
	gotF, err = repos.Facilities.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, up, gotF)
}

func TestGormUsers(t *testing.T) {
	ctx := context.Background()
	repos := NewGorm(openTestDB(t), nil)

	u, err := repos.Users.Create(ctx, domain.NewUser{Username: "alice", Password: "hash-123"})
	require.NoError(t, err)
	_, err = repos.Users.Create(ctx, domain.NewUser{Username: "alice", Password: "hash-456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	_, err = repos.Users.GetByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
