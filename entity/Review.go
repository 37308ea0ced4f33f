package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`

	UserID uint `gorm:"uniqueIndex:idx_review_once" json:"userId"`
	User   User `json:"-"`

	FoodID uint `gorm:"uniqueIndex:idx_review_once" json:"foodId"`
	Food   Food `json:"-"`

	// Nullable only for legacy rows edited without order context. The
	// composite unique index makes duplicate submissions surface as a
	// constraint violation instead of racing check-then-act.
	OrderLineID *uint `gorm:"uniqueIndex:idx_review_once" json:"orderLineId"`
}
