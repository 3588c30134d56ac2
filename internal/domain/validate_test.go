package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string    { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "want *ValidationError, got %v", err)
	out := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Field] = f.Rule
	}
	return out
}

func TestNewPaymentValidate(t *testing.T) {
	cases := []struct {
		name   string
		in     NewPayment
		errors map[string]string
	}{
		{"ok minimal", NewPayment{Amount: "10", Date: "2025-01-01"}, nil},
		{"ok two decimals", NewPayment{Amount: "125.50", Date: "2025-01-15", DueDate: str("2025-02-01")}, nil},
		{"missing amount", NewPayment{Date: "2025-01-01"}, map[string]string{"amount": "required"}},
		{"three decimals", NewPayment{Amount: "1.234", Date: "2025-01-01"}, map[string]string{"amount": "decimal2"}},
		{"negative amount", NewPayment{Amount: "-5", Date: "2025-01-01"}, map[string]string{"amount": "decimal2"}},
		{"bad date", NewPayment{Amount: "1", Date: "2025-13-01"}, map[string]string{"date": "isodate"}},
		{"bad status", NewPayment{Amount: "1", Date: "2025-01-01", Status: "paid"}, map[string]string{"status": "oneof"}},
		{"bad due date", NewPayment{Amount: "1", Date: "2025-01-01", DueDate: str("tomorrow")}, map[string]string{"dueDate": "isodate"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.errors == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.errors, fieldsOf(t, err))
		})
	}
}

func TestNewPaymentWithDefaults(t *testing.T) {
	in := NewPayment{Amount: "1", Date: "2025-01-01"}.WithDefaults()
	assert.Equal(t, PaymentPending, in.Status)
	assert.Equal(t, PaymentTypePickup, in.Type)
	assert.Equal(t, MethodCard, in.Method)

	in = NewPayment{Status: PaymentFailed, Type: PaymentTypeRefund, Method: MethodCash}.WithDefaults()
	assert.Equal(t, PaymentFailed, in.Status)
	assert.Equal(t, PaymentTypeRefund, in.Type)
	assert.Equal(t, MethodCash, in.Method)
}

func validFacility() NewFacility {
	return NewFacility{
		Name:      "Depot",
		Category:  CategoryTransferStation,
		Latitude:  f64(0),
		Longitude: f64(0),
		Address:   "Jalan 1",
		District:  DistrictTemburong,
	}
}

func TestNewFacilityValidate(t *testing.T) {
	assert.NoError(t, validFacility().Validate())

	in := validFacility()
	in.Latitude = f64(90.0001)
	in.Longitude = f64(-181)
	assert.Equal(t, map[string]string{"latitude": "max", "longitude": "min"}, fieldsOf(t, in.Validate()))

	in = validFacility()
	in.Latitude = nil
	in.Category = "landfill"
	in.District = "Kuala Lumpur"
	assert.Equal(t, map[string]string{"latitude": "required", "category": "oneof", "district": "oneof"}, fieldsOf(t, in.Validate()))

	in = validFacility()
	in.AcceptedMaterials = []string{"Paper", ""}
	assert.Equal(t, map[string]string{"acceptedMaterials[1]": "required"}, fieldsOf(t, in.Validate()))
}

func TestNewFacilityBuild(t *testing.T) {
	f := validFacility().Build()
	assert.True(t, f.IsActive)
	assert.NotNil(t, f.AcceptedMaterials)
	assert.Empty(t, f.AcceptedMaterials)

	in := validFacility()
	off := false
	in.IsActive = &off
	in.AcceptedMaterials = []string{"Glass"}
	f = in.Build()
	assert.False(t, f.IsActive)
	in.AcceptedMaterials[0] = "Metal"
	assert.Equal(t, []string{"Glass"}, f.AcceptedMaterials)
}

func TestFacilityPatchApply(t *testing.T) {
	f := validFacility().Build()
	f.Phone = str("111")

	name := "Renamed"
	FacilityPatch{Name: &name}.Apply(&f)
	assert.Equal(t, "Renamed", f.Name)
	assert.Equal(t, "Jalan 1", f.Address)
	assert.Equal(t, "111", *f.Phone)

	lat := 4.5
	FacilityPatch{Latitude: &lat, AcceptedMaterials: []string{}}.Apply(&f)
	assert.Equal(t, 4.5, f.Latitude)
	assert.Equal(t, []string{}, f.AcceptedMaterials)
}

func TestFacilityPatchValidate(t *testing.T) {
	assert.NoError(t, FacilityPatch{}.Validate())

	empty := ""
	lat := 91.0
	cat := Category("nope")
	got := fieldsOf(t, FacilityPatch{Name: &empty, Latitude: &lat, Category: &cat}.Validate())
	assert.Equal(t, map[string]string{"name": "min", "latitude": "max", "category": "oneof"}, got)
}

func TestNewUserValidate(t *testing.T) {
	assert.NoError(t, NewUser{Username: "alice", Password: "secret1"}.Validate())
	got := fieldsOf(t, NewUser{Username: "al", Password: "123"}.Validate())
	assert.Equal(t, map[string]string{"username": "min", "password": "min"}, got)

	// 上限按字节算：24 个汉字正好 72 字节，30 个就超了
	assert.NoError(t, NewUser{Username: "alice", Password: strings.Repeat("密", 24)}.Validate())
	err := NewUser{Username: "alice", Password: strings.Repeat("密", 30)}.Validate()
	assert.Equal(t, map[string]string{"password": "maxbytes"}, fieldsOf(t, err))
	assert.Contains(t, err.Error(), "at most 72 bytes")
}

func TestGinValidator(t *testing.T) {
	v := GinValidator{}
	assert.NoError(t, v.ValidateStruct(nil))
	assert.NoError(t, v.ValidateStruct(42))
	var nilPtr *NewUser
	assert.NoError(t, v.ValidateStruct(nilPtr))

	err := v.ValidateStruct(&NewUser{})
	assert.True(t, IsValidation(err))
	assert.Same(t, Validator(), v.Engine())
}

func TestErrors(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", ErrNotFound)))
	assert.False(t, IsNotFound(ErrDuplicate))

	assert.True(t, IsValidation(InvalidID(0)))
	assert.Contains(t, InvalidID(-3).Error(), "got -3")

	assert.Nil(t, Internal("op", nil))
	cause := errors.New("conn refused")
	err := Internal("facility.get", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "facility.get: conn refused", err.Error())
	var ie *InternalError
	assert.True(t, errors.As(err, &ie))
}

func TestFiltersIsZero(t *testing.T) {
	assert.True(t, PaymentFilter{}.IsZero())
	assert.False(t, PaymentFilter{Search: "x"}.IsZero())
}
