package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Georgiaaa01/AL-GR1/middleware"
	"github.com/Georgiaaa01/AL-GR1/models"
	"github.com/Georgiaaa01/AL-GR1/response"
)

var ErrEmptyCart = errors.New("cart is empty")

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// mapOrderStatus validates against the fixed enumeration. Matching is
// case-sensitive: "SHIPPED" is not a valid status.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusCanceled, models.OrderStatusShipped:
		return models.OrderStatus(status), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// PlaceOrder snapshots the user's cart into an order and clears the cart.
// Everything runs in one transaction: the order row, its items and the cart
// deletion commit together or not at all. Each item copies the product's
// current price, so later catalog changes never touch placed orders.
func PlaceOrder(db *gorm.DB, userID uint) (*models.Order, []models.OrderItem, error) {
	var order models.Order
	var items []models.OrderItem

	err := db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var total float64
		for _, line := range cartItems {
			total += line.Product.Price * float64(line.Quantity)
		}

		order = models.Order{
			UserID:        userID,
			TotalPrice:    total,
			Status:        models.OrderStatusPending,
			PaymentMethod: models.PaymentMethodCashOnDelivery,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items = make([]models.OrderItem, 0, len(cartItems))
		for _, line := range cartItems {
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)

		order, items, err := PlaceOrder(db, userID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				response.Error(c, http.StatusBadRequest, "Your cart is empty")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to create order")
			return
		}

		response.OK(c, http.StatusCreated, "Order created successfully (cash on delivery)", gin.H{
			"order": order,
			"items": items,
		})
	}
}

// GET /orders
//
// Admin sees every order, a customer only their own. Each order carries the
// owner's public identity and its items with products, newest first.
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.ContextUserID)
		role := models.Role(c.GetString(middleware.ContextUserRole))

		query := db.
			Preload("User", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "name", "email")
			}).
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC")
		if role != models.RoleAdmin {
			query = query.Where("user_id = ?", userID)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		response.OK(c, http.StatusOK, "Orders fetched successfully", orders)
	}
}

// PUT /orders/:id/status
//
// Any of the four statuses may overwrite any other, including itself; there
// is deliberately no transition graph.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Order id is not valid")
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "status is required")
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid status value")
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Order not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}

		order.Status = status
		if err := db.Save(&order).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}

		response.OK(c, http.StatusOK, "Order status updated successfully", order)
	}
}
