package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	Orders     []Order     `json:"-"`
	OrderLines []OrderLine `json:"-"`
	Reviews    []Review    `json:"-"`
}
