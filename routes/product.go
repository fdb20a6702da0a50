package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Georgiaaa01/AL-GR1/controllers/product"
	"github.com/Georgiaaa01/AL-GR1/middleware"
	"github.com/Georgiaaa01/AL-GR1/models"
)

// SetupProductRoutes registers the public catalog endpoints and the
// admin-only management endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	admin := r.Group("/products")
	admin.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("", productcontroller.CreateProduct(db))
		admin.PUT("/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/:id", productcontroller.DeleteProduct(db))
	}
}
