package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/longkovipb52/TaloFood-App-sub000/configs"
	"github.com/longkovipb52/TaloFood-App-sub000/controllers"
	"github.com/longkovipb52/TaloFood-App-sub000/middlewares"
	"github.com/longkovipb52/TaloFood-App-sub000/repository"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, foodRepo)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	foodCtrl := controllers.NewFoodController(foodRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, reviewSvc, orderRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/foods", foodCtrl.List)
	r.GET("/foods/:id", foodCtrl.Detail)
	r.GET("/foods/:id/reviews", reviewCtrl.ListForFood)

	// Orders & reviews (customer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		u.POST("/reviews", reviewCtrl.Submit)
		u.PUT("/reviews/:id", reviewCtrl.Update)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/reviews", reviewCtrl.ListForMe)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.DELETE("/reviews/:id", adminCtrl.DeleteReview)
	}
}
