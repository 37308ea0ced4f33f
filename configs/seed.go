package configs

import (
	"log"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Administrator",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a starter menu for development databases.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	mains := entity.Category{CategoryName: "Main Dish"}
	drinks := entity.Category{CategoryName: "Drink"}
	if err := db.Create(&mains).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	foods := []entity.Food{
		{FoodName: "Beef Pho", Price: 50000, CategoryID: mains.ID},
		{FoodName: "Grilled Pork Rice", Price: 45000, CategoryID: mains.ID},
		{FoodName: "Iced Milk Coffee", Price: 25000, CategoryID: drinks.ID},
	}
	return db.Create(&foods).Error
}
