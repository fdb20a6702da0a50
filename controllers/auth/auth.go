package authcontroller

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Georgiaaa01/AL-GR1/models"
	"github.com/Georgiaaa01/AL-GR1/response"
)

const tokenTTL = 24 * time.Hour

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "name, email and password are required")
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			response.Error(c, http.StatusBadRequest, "Email already registered")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusInternalServerError, "Failed to register user")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to register user")
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to register user")
			return
		}

		response.OK(c, http.StatusCreated, "User registered successfully", user)
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "email and password are required")
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to log in")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := signToken(user)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to log in")
			return
		}

		response.OK(c, http.StatusOK, "Login successful", token)
	}
}

func signToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
