// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID          uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	ShippingAddress Address     `json:"shipping_address" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string      `json:"payment_method" gorm:"size:100;not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// OrderItem records a purchased product. Price is copied from the product at
// order time and never tracks later price changes.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// ItemCount is the total quantity across all items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// TotalAmount sums price × quantity over the snapshot prices.
func (o *Order) TotalAmount() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
