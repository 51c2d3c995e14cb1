package models

import "gorm.io/gorm"

// Warehouse is a stock reporting aggregate. It is related to Equipment by
// name only and is not authoritative for availability.
type Warehouse struct {
	gorm.Model

	EquipmentName string `gorm:"not null"`
	Quantity      int    `gorm:"not null"`
	Sizes         string
}
