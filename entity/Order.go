package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Total         int64       `gorm:"not null" json:"total"`
	Status        OrderStatus `gorm:"not null;index" json:"status"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`

	// Placeholder equal to the order date until the order is delivered,
	// then overwritten with the actual delivery date.
	DeliveryDate time.Time `json:"deliveryDate"`

	// Optional caller-supplied token; a replayed create request with the
	// same token returns the original order instead of a duplicate.
	IdempotencyKey *string `gorm:"uniqueIndex" json:"-"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// preload only for order detail; reviews hang off the individual
	// lines, not the header
	OrderLines []OrderLine `json:"-"`
}
