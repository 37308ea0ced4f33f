package repository

import (
	"math"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) Get(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) FindByOrderLine(lineID uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.Where("order_line_id = ?", lineID).First(&rev).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Save(rev *entity.Review) error {
	return r.DB.Save(rev).Error
}

// Delete removes the row for real. A soft delete would keep the
// (user, food, order_line) slot occupied in the unique index and block
// re-reviewing the line.
func (r *ReviewRepository) Delete(rev *entity.Review) error {
	return r.DB.Unscoped().Delete(rev).Error
}

func (r *ReviewRepository) ListForFood(foodID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []entity.Review
	err := r.DB.Where("food_id = ?", foodID).
		Order("review_date DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []entity.Review
	err := r.DB.Where("user_id = ?", userID).
		Order("review_date DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// RecalcAverage is the only writer of foods.average_rating. It stores the
// mean of the remaining ratings rounded to one decimal, or NULL when the
// last review is gone — never a stale value, never a default 0.
func (r *ReviewRepository) RecalcAverage(foodID uint) error {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := r.DB.Model(&entity.Review{}).
		Where("food_id = ?", foodID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Scan(&row).Error
	if err != nil {
		return err
	}

	food := r.DB.Model(&entity.Food{}).Where("id = ?", foodID)
	if row.Cnt == 0 {
		return food.Update("average_rating", nil).Error
	}
	avg := math.Round(row.Avg*10) / 10
	return food.Update("average_rating", avg).Error
}
