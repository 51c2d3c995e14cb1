package models

import "gorm.io/gorm"

// OrderedItem links an Equipment row to an Order. The (EquipmentID, OrderID)
// pair is unique; rows are created at order placement and never mutated.
type OrderedItem struct {
	gorm.Model

	EquipmentID uint `gorm:"not null;uniqueIndex:idx_equipment_order"`
	OrderID     uint `gorm:"not null;uniqueIndex:idx_equipment_order"`

	// Relationships
	Equipment Equipment `gorm:"foreignKey:EquipmentID"`
	Order     Order     `gorm:"foreignKey:OrderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
