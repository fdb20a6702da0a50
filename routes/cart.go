package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/Georgiaaa01/AL-GR1/controllers/cart"
	"github.com/Georgiaaa01/AL-GR1/middleware"
	"github.com/Georgiaaa01/AL-GR1/models"
)

// SetupCartRoutes registers the cart endpoints. The cart is customer-only;
// an admin token is rejected for every operation.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleUser))
	{
		cart.GET("", cartcontroller.GetCart(db))
		cart.POST("", cartcontroller.AddToCart(db))
		cart.PUT("/:id", cartcontroller.UpdateCartItem(db))
		cart.DELETE("/:id", cartcontroller.DeleteCartItem(db))
		cart.DELETE("", cartcontroller.ClearCart(db))
	}
}
