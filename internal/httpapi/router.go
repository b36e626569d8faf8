package httpapi

import (
	"stylehub-be/internal/logger"
	"stylehub-be/internal/middleware"
	"stylehub-be/internal/order"
	"stylehub-be/internal/product"
	"stylehub-be/internal/user"

	"github.com/gin-gonic/gin"
)

type Services struct {
	User    user.Service
	Product product.Service
	Order   order.Service
}

// NewRouter wires the REST surface. Session-scoped routes go through
// the auth gate; catalog mutations and status updates additionally
// through the admin gate.
func NewRouter(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimit())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", registerHandler(svcs.User))
		authGroup.POST("/login", loginHandler(svcs.User))
		authGroup.POST("/logout", logoutHandler())
		authGroup.GET("/me", middleware.Authenticate(svcs.User), currentUserHandler())
	}

	products := api.Group("/products")
	{
		products.GET("", listProductsHandler(svcs.Product))
		products.GET("/:id", getProductHandler(svcs.Product))

		adminOnly := products.Group("", middleware.Authenticate(svcs.User), middleware.RequireAdmin())
		adminOnly.POST("", createProductHandler(svcs.Product))
		adminOnly.PUT("/:id", updateProductHandler(svcs.Product))
		adminOnly.DELETE("/:id", deleteProductHandler(svcs.Product))
	}

	orders := api.Group("/orders", middleware.Authenticate(svcs.User))
	{
		orders.GET("", listOrdersHandler(svcs.Order))
		orders.POST("", createOrderHandler(svcs.Order))
		orders.PATCH("/:id/status", middleware.RequireAdmin(), updateOrderStatusHandler(svcs.Order))
	}

	return r
}
