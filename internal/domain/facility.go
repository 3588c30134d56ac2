package domain

import (
	"context"
	"time"
)

type Category string

const (
	CategoryRecyclingCenter    Category = "recycling_center"
	CategoryDropOffPoint       Category = "drop_off_point"
	CategoryCollectionFacility Category = "collection_facility"
	CategoryCollectionCenter   Category = "collection_center"
	CategoryTransferStation    Category = "transfer_station"
)

type District string

const (
	DistrictBruneiMuara District = "Brunei-Muara"
	DistrictBelait      District = "Belait"
	DistrictTutong      District = "Tutong"
	DistrictTemburong   District = "Temburong"
)

type Facility struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Category          Category  `json:"category"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Address           string    `json:"address"`
	District          District  `json:"district"`
	Phone             *string   `json:"phone"`
	Email             *string   `json:"email"`
	Website           *string   `json:"website"`
	Description       *string   `json:"description"`
	OperatingHours    *string   `json:"operatingHours"`
	AcceptedMaterials []string  `json:"acceptedMaterials"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type NewFacility struct {
	Name              string   `json:"name"              binding:"required,max=255"`
	Category          Category `json:"category"          binding:"required,oneof=recycling_center drop_off_point collection_facility collection_center transfer_station"`
	Latitude          *float64 `json:"latitude"          binding:"required,min=-90,max=90"`
	Longitude         *float64 `json:"longitude"         binding:"required,min=-180,max=180"`
	Address           string   `json:"address"           binding:"required,max=500"`
	District          District `json:"district"          binding:"required,oneof=Brunei-Muara Belait Tutong Temburong"`
	Phone             *string  `json:"phone"             binding:"omitempty,max=32"`
	Email             *string  `json:"email"             binding:"omitempty,max=255"`
	Website           *string  `json:"website"           binding:"omitempty,max=255"`
	Description       *string  `json:"description"       binding:"omitempty,max=2000"`
	OperatingHours    *string  `json:"operatingHours"    binding:"omitempty,max=255"`
	AcceptedMaterials []string `json:"acceptedMaterials" binding:"omitempty,max=50,dive,required,max=64"`
	IsActive          *bool    `json:"isActive"`
}

func (in NewFacility) Validate() error { return Validate(in) }

// FacilityPatch 部分更新：nil 字段表示“未提供”，原值保留
type FacilityPatch struct {
	Name              *string   `json:"name"              binding:"omitempty,min=1,max=255"`
	Category          *Category `json:"category"          binding:"omitempty,oneof=recycling_center drop_off_point collection_facility collection_center transfer_station"`
	Latitude          *float64  `json:"latitude"          binding:"omitempty,min=-90,max=90"`
	Longitude         *float64  `json:"longitude"         binding:"omitempty,min=-180,max=180"`
	Address           *string   `json:"address"           binding:"omitempty,min=1,max=500"`
	District          *District `json:"district"          binding:"omitempty,oneof=Brunei-Muara Belait Tutong Temburong"`
	Phone             *string   `json:"phone"             binding:"omitempty,max=32"`
	Email             *string   `json:"email"             binding:"omitempty,max=255"`
	Website           *string   `json:"website"           binding:"omitempty,max=255"`
	Description       *string   `json:"description"       binding:"omitempty,max=2000"`
	OperatingHours    *string   `json:"operatingHours"    binding:"omitempty,max=255"`
	AcceptedMaterials []string  `json:"acceptedMaterials" binding:"omitempty,max=50,dive,required,max=64"`
	IsActive          *bool     `json:"isActive"`
}

func (p FacilityPatch) Validate() error { return Validate(p) }

// Build 由已校验的入参生成实体（id 与时间戳由存储层填写）
func (in NewFacility) Build() Facility {
	f := Facility{
		Name:              in.Name,
		Category:          in.Category,
		Address:           in.Address,
		District:          in.District,
		Phone:             cloneStr(in.Phone),
		Email:             cloneStr(in.Email),
		Website:           cloneStr(in.Website),
		Description:       cloneStr(in.Description),
		OperatingHours:    cloneStr(in.OperatingHours),
		AcceptedMaterials: cloneStrings(in.AcceptedMaterials),
		IsActive:          true,
	}
	if in.Latitude != nil {
		f.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		f.Longitude = *in.Longitude
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}
	return f
}

// Apply 把补丁合并到 f 上，不触碰 ID / CreatedAt / UpdatedAt
func (p FacilityPatch) Apply(f *Facility) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Latitude != nil {
		f.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		f.Longitude = *p.Longitude
	}
	if p.Address != nil {
		f.Address = *p.Address
	}
	if p.District != nil {
		f.District = *p.District
	}
	if p.Phone != nil {
		f.Phone = cloneStr(p.Phone)
	}
	if p.Email != nil {
		f.Email = cloneStr(p.Email)
	}
	if p.Website != nil {
		f.Website = cloneStr(p.Website)
	}
	if p.Description != nil {
		f.Description = cloneStr(p.Description)
	}
	if p.OperatingHours != nil {
		f.OperatingHours = cloneStr(p.OperatingHours)
	}
	if p.AcceptedMaterials != nil {
		f.AcceptedMaterials = cloneStrings(p.AcceptedMaterials)
	}
	if p.IsActive != nil {
		f.IsActive = *p.IsActive
	}
}

// FacilityFilter 默认只返回 active；IncludeInactive 打开后返回全部
type FacilityFilter struct {
	Category        Category `form:"category"         binding:"omitempty,oneof=recycling_center drop_off_point collection_facility collection_center transfer_station"`
	District        District `form:"district"         binding:"omitempty,oneof=Brunei-Muara Belait Tutong Temburong"`
	IncludeInactive bool     `form:"include_inactive"`
	Search          string   `form:"q"                binding:"omitempty,max=100"`
}

type FacilityRepository interface {
	Create(ctx context.Context, in NewFacility) (Facility, error)
	GetByID(ctx context.Context, id int64) (Facility, error)
	List(ctx context.Context, f FacilityFilter) ([]Facility, error)
	Update(ctx context.Context, id int64, patch FacilityPatch) (Facility, error)
	// SoftDelete 置 isActive=false，记录仍可按 id 查到
	SoftDelete(ctx context.Context, id int64) error
}

// Clone 深拷贝，调用方修改返回值不会影响存储内状态
func (f Facility) Clone() Facility {
	f.Phone = cloneStr(f.Phone)
	f.Email = cloneStr(f.Email)
	f.Website = cloneStr(f.Website)
	f.Description = cloneStr(f.Description)
	f.OperatingHours = cloneStr(f.OperatingHours)
	f.AcceptedMaterials = cloneStrings(f.AcceptedMaterials)
	return f
}

func (p Payment) Clone() Payment {
	p.Description = cloneStr(p.Description)
	p.Reference = cloneStr(p.Reference)
	p.DueDate = cloneStr(p.DueDate)
	return p
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// cloneStrings 总是返回非 nil，JSON 输出 [] 而不是 null
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
