package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model

	Number         string    `gorm:"uniqueIndex;not null"` // external reference, uuid
	OrderDate      time.Time `gorm:"not null"`
	SubmissionDate time.Time `gorm:"not null"`
	Price          float64   `gorm:"not null"`
	WasReturned    bool      `gorm:"not null;default:false"`
	RentedItems    string    // free-text summary, e.g. "Skis Small, Helmet Universal"
	UserID         uint      `gorm:"not null;index"`
	RentalInfoID   *uint     `gorm:"index"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID"`
	RentalInfo   *RentalInfo   `gorm:"foreignKey:RentalInfoID"`
	OrderedItems []OrderedItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
