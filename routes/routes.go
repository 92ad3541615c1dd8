package routes

import (
	"github.com/flounder11/online-coffee-api/controllers"
	"github.com/flounder11/online-coffee-api/repository"
	"github.com/flounder11/online-coffee-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	productRepo := repository.NewProductRepository(db)
	additiveRepo := repository.NewAdditiveRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	productSvc := services.NewProductService(productRepo)
	additiveSvc := services.NewAdditiveService(additiveRepo)
	checkoutSvc := services.NewCheckoutService(db, productRepo, additiveRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo)

	// Controllers
	productCtrl := controllers.NewProductController(productSvc)
	additiveCtrl := controllers.NewAdditiveController(additiveSvc)
	cartCtrl := controllers.NewCartController(checkoutSvc, orderSvc)

	api := r.Group("/api")
	{
		api.GET("/products", productCtrl.List)
		api.GET("/products/:id", productCtrl.Get)

		api.GET("/additives", additiveCtrl.List)
		api.GET("/additives/:id", additiveCtrl.Get)
		api.POST("/additives", additiveCtrl.Create)
		api.PUT("/additives/:id", additiveCtrl.Update)
		api.DELETE("/additives/:id", additiveCtrl.Delete)

		api.POST("/cart", cartCtrl.Create)
		api.GET("/cart/order/:id", cartCtrl.OrderDetail)
	}
}
