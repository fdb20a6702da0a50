package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ordercontroller "github.com/Georgiaaa01/AL-GR1/controllers/order"
	"github.com/Georgiaaa01/AL-GR1/middleware"
	"github.com/Georgiaaa01/AL-GR1/models"
)

// SetupOrderRoutes registers the order endpoints. Placement is customer-only,
// listing is role-scoped inside the handler, status updates are admin-only.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", middleware.RequireRole(models.RoleUser), ordercontroller.PlaceOrderHandler(db))
		orders.GET("", ordercontroller.GetOrdersHandler(db))
		orders.PUT("/:id/status", middleware.RequireRole(models.RoleAdmin), ordercontroller.UpdateOrderStatusHandler(db))
	}
}
