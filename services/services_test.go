package services_test

import (
	"fmt"
	"testing"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"github.com/longkovipb52/TaloFood-App-sub000/repository"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database migrated with the full
// schema. TranslateError matches production so duplicate-key handling in
// the review upsert behaves the same.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Food{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Review{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewFoodRepository(db))
}

func newReviewService(db *gorm.DB) *services.ReviewService {
	return services.NewReviewService(repository.NewReviewRepository(db), repository.NewOrderRepository(db))
}

func seedUser(t *testing.T, db *gorm.DB, email string) entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", FullName: "Test User", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedFood(t *testing.T, db *gorm.DB, name string, price int64) entity.Food {
	t.Helper()
	f := entity.Food{FoodName: name, Price: price}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return f
}

// seedDeliveredLine creates a delivered order holding one line of the food
// for the user, and returns the order.
func seedDeliveredLine(t *testing.T, db *gorm.DB, user entity.User, food entity.Food, qty int) entity.Order {
	t.Helper()
	o := entity.Order{
		Total:   food.Price * int64(qty),
		Status:  entity.StatusDelivered,
		UserID:  user.ID,
		Address: "1 Test St",
	}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	line := entity.OrderLine{
		Qty: qty, UnitPrice: food.Price,
		OrderID: o.ID, FoodID: food.ID, UserID: user.ID,
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed order line: %v", err)
	}
	return o
}

func foodByID(t *testing.T, db *gorm.DB, id uint) entity.Food {
	t.Helper()
	var f entity.Food
	if err := db.First(&f, id).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	return f
}
