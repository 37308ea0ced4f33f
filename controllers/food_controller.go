package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/longkovipb52/TaloFood-App-sub000/pkg/resp"
	"github.com/longkovipb52/TaloFood-App-sub000/repository"
	"gorm.io/gorm"
)

// Catalog reads only: price, counters and the rating aggregate. Catalog
// management lives elsewhere.
type FoodController struct {
	Repo *repository.FoodRepository
}

func NewFoodController(repo *repository.FoodRepository) *FoodController {
	return &FoodController{Repo: repo}
}

// GET /foods?categoryId=&limit=
func (fc *FoodController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.DefaultQuery("categoryId", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	foods, err := fc.Repo.List(uint(categoryID), limit)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": foods})
}

// GET /foods/:id
func (fc *FoodController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	food, err := fc.Repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "food not found")
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, food)
}
