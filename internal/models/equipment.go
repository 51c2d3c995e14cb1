package models

import "gorm.io/gorm"

type EquipmentType string

const (
	TypeSkis      EquipmentType = "Skis"
	TypeSnowboard EquipmentType = "Snowboard"
	TypeBoots     EquipmentType = "Boots"
	TypeHelmet    EquipmentType = "Helmet"
	TypeGloves    EquipmentType = "Gloves"
	TypePoles     EquipmentType = "Poles"
	TypeGoggles   EquipmentType = "Goggles"
)

func (t EquipmentType) Valid() bool {
	switch t {
	case TypeSkis, TypeSnowboard, TypeBoots, TypeHelmet, TypeGloves, TypePoles, TypeGoggles:
		return true
	}
	return false
}

type EquipmentSize string

const (
	SizeSmall     EquipmentSize = "Small"
	SizeMedium    EquipmentSize = "Medium"
	SizeLarge     EquipmentSize = "Large"
	SizeUniversal EquipmentSize = "Universal"
)

func (s EquipmentSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeUniversal:
		return true
	}
	return false
}

type Equipment struct {
	gorm.Model

	Type          EquipmentType `gorm:"not null;index"`
	Size          EquipmentSize `gorm:"not null"`
	Price         float64       `gorm:"not null"`
	IsInWarehouse bool          `gorm:"not null;default:true"`
	IsReserved    bool          `gorm:"not null;default:false"`
	RentalInfoID  *uint         `gorm:"index"`

	// Relationships
	RentalInfo   *RentalInfo   `gorm:"foreignKey:RentalInfoID"`
	OrderedItems []OrderedItem `gorm:"foreignKey:EquipmentID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}

// Name is the display form used in order summaries, e.g. "Skis Small".
func (e Equipment) Name() string {
	return string(e.Type) + " " + string(e.Size)
}

// Available reports whether the item can be added to a new order.
func (e Equipment) Available() bool {
	return e.IsInWarehouse && !e.IsReserved
}
