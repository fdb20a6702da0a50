package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Georgiaaa01/AL-GR1/response"
)

// Context keys set by ValidateToken for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// ValidateToken checks the Bearer token on the request and puts the caller's
// id and role into the gin context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid token claims")
		c.Abort()
		return
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid token claims")
		c.Abort()
		return
	}
	role, ok := claims["role"].(string)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid token claims")
		c.Abort()
		return
	}

	c.Set(ContextUserID, uint(userID))
	c.Set(ContextUserRole, role)

	c.Next()
}
