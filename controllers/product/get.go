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

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		response.OK(c, http.StatusOK, "Products fetched successfully", products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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
			response.Error(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}

		response.OK(c, http.StatusOK, "Product fetched successfully", product)
	}
}
