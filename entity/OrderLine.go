package entity

import (
	"gorm.io/gorm"
)

// OrderLine is immutable once created; UnitPrice is a point-in-time
// snapshot, never re-read from Food.
type OrderLine struct {
	gorm.Model
	Qty       int   `gorm:"not null" json:"qty"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	FoodID uint `gorm:"index" json:"foodId"`
	Food   Food `json:"-"`

	// Duplicated from the order for query convenience.
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Review *Review `gorm:"foreignKey:OrderLineID" json:"-"`
}
