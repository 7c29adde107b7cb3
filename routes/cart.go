package routes

import (
	"github.com/Shankz20191/qkart-backend/config"
	"github.com/Shankz20191/qkart-backend/controllers"
	"github.com/Shankz20191/qkart-backend/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RegisterCartRoutes wires the cart/checkout surface. All routes require an
// authenticated identity.
func RegisterCartRoutes(
	r *gin.Engine,
	controller *controllers.CartController,
	cfg config.Config,
	logger *zap.Logger,
) {
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimitMiddleware(rate.Limit(50), 100))

	api := r.Group("/v1/cart")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("", controller.GetCart)
		api.POST("", controller.AddItem)
		api.PUT("", controller.UpdateItem)
		api.DELETE("/:product_id", controller.RemoveItem)
		api.POST("/checkout", controller.Checkout)
	}
}
