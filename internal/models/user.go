package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Login        string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PhoneNumber  string
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"not null;default:user"`
	RentalInfoID *uint  `gorm:"index"`

	// Relationships
	RentalInfo *RentalInfo `gorm:"foreignKey:RentalInfoID"`
	Orders     []Order     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
