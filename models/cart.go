package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"uniqueIndex"`                                   // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem references a Product row; repeated purchases of the same product
// get their own row, quantities are never merged.
type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	CartID    uint `gorm:"index"`
	ProductID uint
	Quantity  int
	AddedAt   time.Time
}
