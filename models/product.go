package models

import "time"

// Categories offered by the admin product form.
var Categories = []string{"Audio", "Appliance", "Others"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Category    string  `gorm:"not null"`
	Title       string  `gorm:"uniqueIndex;not null"` // the admin form upserts by title
	Stock       int     `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"size:500;not null"`
	Image       string  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
