package models

import "gorm.io/gorm"

// Worker is a staff member record, separate from the User account that may
// accompany it. WorkStart/WorkEnd are "HH:MM" strings with WorkStart <= WorkEnd.
type Worker struct {
	gorm.Model

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PhoneNumber  string `gorm:"not null"`
	Address      string
	WorkStart    string `gorm:"not null"`
	WorkEnd      string `gorm:"not null"`
	WorkingDays  string
	JobTitle     string `gorm:"not null"`
	Role         Role   `gorm:"not null;default:worker"`
	RentalInfoID uint   `gorm:"not null;index"`

	// Relationships
	RentalInfo RentalInfo `gorm:"foreignKey:RentalInfoID"`
}
