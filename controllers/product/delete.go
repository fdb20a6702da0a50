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

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Product id is not valid")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Product not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}

		response.OK(c, http.StatusOK, "Product deleted successfully", gin.H{})
	}
}
