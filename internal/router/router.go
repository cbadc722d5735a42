// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/config"
	"github.com/shopkit/orders-backend/internal/handlers"
	"github.com/shopkit/orders-backend/internal/middleware"
	"github.com/shopkit/orders-backend/internal/repository"
	"github.com/shopkit/orders-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)
	reviewRepo := repository.NewProductReviewRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, orderRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo)
	reviewService := services.NewReviewService(reviewRepo)
	statsService := services.NewStatsService(orderRepo, itemRepo, reviewRepo, productRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, orderService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
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
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/orders", userHandler.GetUserOrders)
			users.DELETE("/:id/orders/:orderID", userHandler.RemoveUserOrder)
			users.GET("/:id/reviews", reviewHandler.GetUserReviews)
		}

		products := v1.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.GetProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)

			// Reviews address by composite key (product, user)
			products.POST("/:id/reviews", reviewHandler.CreateReview)
			products.GET("/:id/reviews", reviewHandler.GetProductReviews)
			products.GET("/:id/reviews/stats", reviewHandler.GetProductReviewStats)
			products.GET("/:id/reviews/:userID", reviewHandler.GetReview)
			products.PUT("/:id/reviews/:userID", reviewHandler.UpdateReview)
			products.DELETE("/:id/reviews/:userID", reviewHandler.DeleteReview)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.SetOrderStatus)
			orders.POST("/:id/items", orderHandler.AddOrderItem)
			orders.DELETE("/:id/items/:itemID", orderHandler.RemoveOrderItem)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/orders-by-status", statsHandler.GetOrdersByStatus)
			stats.GET("/sales", statsHandler.GetSales)
			stats.GET("/top-users", statsHandler.GetTopUsers)
			stats.GET("/top-products", statsHandler.GetTopProducts)
			stats.GET("/top-rated", statsHandler.GetTopRated)
			stats.GET("/revenue-by-product", statsHandler.GetRevenueByProduct)
			stats.GET("/inventory-value", statsHandler.GetInventoryValue)
			stats.GET("/prices", statsHandler.GetPriceStatistics)
			stats.GET("/users/:id/paid-total", statsHandler.GetUserPaidTotal)
		}
	}

	return r
}
