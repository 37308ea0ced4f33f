package repository

import (
	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"gorm.io/gorm"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

func (r *FoodRepository) Get(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) List(categoryID uint, limit int) ([]entity.Food, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Model(&entity.Food{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var foods []entity.Food
	err := q.Order("id").Limit(limit).Find(&foods).Error
	return foods, err
}

// AllExist reports whether every id references a real food row.
func (r *FoodRepository) AllExist(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	uniq := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	distinct := make([]uint, 0, len(uniq))
	for id := range uniq {
		distinct = append(distinct, id)
	}

	var cnt int64
	if err := r.DB.Model(&entity.Food{}).Where("id IN ?", distinct).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt == int64(len(distinct)), nil
}

// IncrementTotalSold adds qty to the sales counter. Additive so concurrent
// orders for the same food commute; must run inside the order transaction.
func (r *FoodRepository) IncrementTotalSold(tx *gorm.DB, foodID uint, qty int) error {
	return tx.Model(&entity.Food{}).
		Where("id = ?", foodID).
		Update("total_sold", gorm.Expr("total_sold + ?", qty)).Error
}
