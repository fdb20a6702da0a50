package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Georgiaaa01/AL-GR1/models"
	"github.com/Georgiaaa01/AL-GR1/response"
)

type ProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "name is required and price must not be negative")
			return
		}

		product := models.Product{
			Name:     input.Name,
			Price:    input.Price,
			Category: input.Category,
			Image:    input.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}

		response.OK(c, http.StatusCreated, "Product created successfully", product)
	}
}
