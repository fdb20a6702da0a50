package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authcontroller "github.com/Georgiaaa01/AL-GR1/controllers/auth"
)

// SetupAuthRoutes registers the public register/login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authcontroller.Register(db))
		auth.POST("/login", authcontroller.Login(db))
	}
}
