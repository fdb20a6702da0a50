package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Georgiaaa01/AL-GR1/models"
	"github.com/Georgiaaa01/AL-GR1/response"
)

// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Product id is not valid")
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "name is required and price must not be negative")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Product not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}

		product.Name = input.Name
		product.Price = input.Price
		product.Category = input.Category
		product.Image = input.Image
		if err := db.Save(&product).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}

		response.OK(c, http.StatusOK, "Product updated successfully", product)
	}
}
