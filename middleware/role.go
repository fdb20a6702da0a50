package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Georgiaaa01/AL-GR1/models"
	"github.com/Georgiaaa01/AL-GR1/response"
)

// RequireRole gates a route on exactly one of the two fixed roles. It must
// run after ValidateToken.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextUserRole)
		if !exists || models.Role(val.(string)) != role {
			msg := "Only admin can access this resource"
			if role == models.RoleUser {
				msg = "Only customers can access this resource"
			}
			response.Error(c, http.StatusForbidden, msg)
			c.Abort()
			return
		}
		c.Next()
	}
}
