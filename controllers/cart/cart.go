package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Georgiaaa01/AL-GR1/middleware"
	"github.com/Georgiaaa01/AL-GR1/models"
	"github.com/Georgiaaa01/AL-GR1/response"
)

type AddToCartInput struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Error loading cart")
			return
		}

		response.OK(c, http.StatusOK, "Cart loaded successfully", items)
	}
}

// POST /cart
//
// Adding a product already in the cart increments the existing line. The
// merge happens in a single upsert against the (user_id, product_id) unique
// index, so concurrent adds for the same product cannot create duplicate
// rows or lose an increment.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 || input.Quantity == 0 {
			response.Error(c, http.StatusBadRequest, "productId and quantity are required")
			return
		}
		if input.Quantity < 1 {
			response.Error(c, http.StatusBadRequest, "Quantity must be at least 1")
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Product not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Error adding product to cart")
			return
		}

		item := models.CartItem{
			UserID:    userID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		// Upsert and re-read in one transaction: the upsert holds the row
		// lock until commit, so the returned quantity is exactly the merged
		// value, untouched by a concurrent add.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
					"updated_at": time.Now(),
				}),
			}).Create(&item).Error; err != nil {
				return err
			}
			return tx.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Error adding product to cart")
			return
		}
		item.Product = product

		response.OK(c, http.StatusCreated, "Product added to cart", item)
	}
}

// PUT /cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Cart item id is not valid")
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 {
			response.Error(c, http.StatusBadRequest, "Quantity must be at least 1")
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Cart item not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Error updating cart item")
			return
		}

		// Replace, never add.
		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Error updating cart item")
			return
		}

		response.OK(c, http.StatusOK, "Cart item updated successfully", item)
	}
}

// DELETE /cart/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Cart item id is not valid")
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Error deleting cart item")
			return
		}
		if result.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Cart item not found")
			return
		}

		response.OK(c, http.StatusOK, "Cart item deleted successfully", gin.H{})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Error clearing cart")
			return
		}

		response.OK(c, http.StatusOK, "Cart cleared successfully", gin.H{})
	}
}
