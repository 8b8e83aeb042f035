// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Address is embedded into User and copied into Order as the shipping
// snapshot, so an order keeps the address it was placed with.
type Address struct {
	Street  string `json:"street" gorm:"size:255"`
	City    string `json:"city" gorm:"size:100"`
	State   string `json:"state" gorm:"size:100"`
	ZipCode string `json:"zip_code" gorm:"size:20"`
	Country string `json:"country" gorm:"size:100"`
}

// Enums
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "Electronics"
	CategoryClothing    ProductCategory = "Clothing"
	CategoryBooks       ProductCategory = "Books"
	CategoryHomeGarden  ProductCategory = "Home & Garden"
	CategorySports      ProductCategory = "Sports"
	CategoryOther       ProductCategory = "Other"
)

// ProductCategories lists every valid category value.
func ProductCategories() []ProductCategory {
	return []ProductCategory{
		CategoryElectronics,
		CategoryClothing,
		CategoryBooks,
		CategoryHomeGarden,
		CategorySports,
		CategoryOther,
	}
}

// IsValid reports whether c is a member of the fixed category set.
func (c ProductCategory) IsValid() bool {
	for _, valid := range ProductCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s is a member of the status set. Transitions
// between members are not constrained.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
