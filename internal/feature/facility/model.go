package facility

import (
	"time"

	"gorm.io/datatypes"

	"eco-waste-api/internal/domain"
)

type FacilityModel struct {
	ID                int64                        `gorm:"primaryKey;autoIncrement"`
	Name              string                       `gorm:"size:255;not null"`
	Category          string                       `gorm:"size:32;not null;index"`
	Latitude          float64                      `gorm:"not null"`
	Longitude         float64                      `gorm:"not null"`
	Address           string                       `gorm:"size:500;not null"`
	District          string                       `gorm:"size:32;not null;index"`
	Phone             *string                      `gorm:"size:32"`
	Email             *string                      `gorm:"size:255"`
	Website           *string                      `gorm:"size:255"`
	Description       *string                      `gorm:"type:text"`
	OperatingHours    *string                      `gorm:"size:255"`
	AcceptedMaterials datatypes.JSONSlice[string]
	// 不设 default：gorm 会把 false 当零值跳过，从而写入 default
	IsActive bool `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;precision:6;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;precision:6;not null"`
}

func (FacilityModel) TableName() string { return "facilities" }

func (m FacilityModel) ToDomain() domain.Facility {
	mats := make([]string, len(m.AcceptedMaterials))
	copy(mats, m.AcceptedMaterials)
	return domain.Facility{
		ID:                m.ID,
		Name:              m.Name,
		Category:          domain.Category(m.Category),
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Address:           m.Address,
		District:          domain.District(m.District),
		Phone:             m.Phone,
		Email:             m.Email,
		Website:           m.Website,
		Description:       m.Description,
		OperatingHours:    m.OperatingHours,
		AcceptedMaterials: mats,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

func FromDomain(f domain.Facility) FacilityModel {
	return FacilityModel{
		ID:                f.ID,
		Name:              f.Name,
		Category:          string(f.Category),
		Latitude:          f.Latitude,
		Longitude:         f.Longitude,
		Address:           f.Address,
		District:          string(f.District),
		Phone:             f.Phone,
		Email:             f.Email,
		Website:           f.Website,
		Description:       f.Description,
		OperatingHours:    f.OperatingHours,
		AcceptedMaterials: datatypes.JSONSlice[string](f.AcceptedMaterials),
		IsActive:          f.IsActive,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}
