package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	FoodName string `gorm:"not null" json:"foodName"`
	Detail   string `json:"detail"`
	Price    int64  `gorm:"not null" json:"price"`
	Picture  string `json:"picture"`

	// Sales counter, incremented inside the order transaction.
	TotalSold int64 `gorm:"not null;default:0" json:"totalSold"`

	// NULL until the first review exists; written only by the
	// review aggregate recompute.
	AverageRating *float64 `json:"averageRating"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	OrderLines []OrderLine `json:"-"`
	Reviews    []Review    `json:"-"`
}
