package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCanceled   OrderStatus = "canceled"
	OrderStatusShipped    OrderStatus = "shipped"
)

// PaymentMethodCashOnDelivery is the only payment method the store supports.
const PaymentMethodCashOnDelivery = "cash_on_delivery"

// Order is immutable once created except for Status. TotalPrice is computed
// at checkout and never recomputed.
type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint        `gorm:"not null;index" json:"user_id"`
	User          User        `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	TotalPrice    float64     `gorm:"not null" json:"total_price"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod string      `gorm:"not null;default:'cash_on_delivery'" json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem freezes the unit price at the moment the order was placed;
// later catalog price changes never touch it.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
