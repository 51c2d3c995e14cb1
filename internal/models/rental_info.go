package models

import "gorm.io/gorm"

// RentalInfo describes one rental location. Hours are stored as "HH:MM"
// time-of-day strings with OpenHour <= CloseHour.
type RentalInfo struct {
	gorm.Model

	OpenHour    string `gorm:"not null"`
	CloseHour   string `gorm:"not null"`
	Address     string `gorm:"not null"`
	PhoneNumber string `gorm:"not null"`
	OpenDays    string
	Email       string

	// Relationships
	Users     []User      `gorm:"foreignKey:RentalInfoID"`
	Workers   []Worker    `gorm:"foreignKey:RentalInfoID"`
	Equipment []Equipment `gorm:"foreignKey:RentalInfoID"`
	Orders    []Order     `gorm:"foreignKey:RentalInfoID"`
}
