package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	CategoryName string `gorm:"uniqueIndex;not null" json:"categoryName"`

	Foods []Food `json:"-"`
}
