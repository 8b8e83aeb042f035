// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoply/shop-backend/internal/config"
	"github.com/shoply/shop-backend/internal/handlers"
	"github.com/shoply/shop-backend/internal/middleware"
	"github.com/shoply/shop-backend/internal/models"
	"github.com/shoply/shop-backend/internal/services"
	"github.com/shoply/shop-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(db)
	userService := services.NewUserService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/stats/categories", productHandler.GetCategoryStats)
			products.GET("/category/:category", productHandler.GetProductsByCategory)
			products.GET("/price-range/:min/:max", productHandler.GetProductsByPriceRange)
			products.GET("/search/:query", productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/ratings", productHandler.AddRating)
			products.POST("/:id/discount", productHandler.ApplyDiscount)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/wishlist/:productId", userHandler.AddToWishlist)
			users.GET("/:id/cart", userHandler.GetCart)
			users.POST("/:id/cart/:productId", userHandler.AddToCart)
			users.DELETE("/:id/cart/:productId", userHandler.RemoveFromCart)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.POST("", middleware.CheckoutRateLimit(), orderHandler.Checkout)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/user/:userId", orderHandler.GetUserOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
			categories.GET("/:category/products", productHandler.GetProductsByCategory)
		}
	}

	return r
}

// Helper handlers for simple endpoints
func getCategoriesHandler(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": models.ProductCategories(),
	})
}
