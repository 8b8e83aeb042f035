// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shoply/shop-backend/internal/models"
	"github.com/shoply/shop-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress *AddressRequest       `json:"shipping_address,omitempty"`
	PaymentMethod   string                `json:"payment_method" validate:"required,max=100"`
	// ClearCart removes the purchased entries from the user's cart. The
	// caller decides; checkout never clears the cart on its own.
	ClearCart bool `json:"clear_cart,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Checkout creates an order from the selected items, copying each product's
// current price into the order so later price changes never affect it. The
// shipping address defaults to the user's stored address.
func (s *OrderService) Checkout(userID uuid.UUID, req *CheckoutRequest) (*models.Order, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, reqItem := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, reqItem.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, reqItem.ProductID)
				}
				return fmt.Errorf("database error: %w", err)
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  reqItem.Quantity,
				Price:     product.Price, // snapshot at order time
			})
		}

		shipping := user.Address
		if req.ShippingAddress != nil {
			shipping = addressFromRequest(req.ShippingAddress)
		}

		order = &models.Order{
			UserID:          userID,
			Items:           items,
			ShippingAddress: shipping,
			PaymentMethod:   req.PaymentMethod,
			Status:          models.OrderStatusPending,
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if req.ClearCart {
			productIDs := make([]uuid.UUID, 0, len(req.Items))
			for _, reqItem := range req.Items {
				productIDs = append(productIDs, reqItem.ProductID)
			}
			if err := tx.Where("user_id = ? AND product_id IN ?", userID, productIDs).
				Delete(&models.CartItem{}).Error; err != nil {
				return fmt.Errorf("failed to clear cart entries: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(order.ID)
}

// GetOrder loads an order with its associations. A product or user deleted
// after the order was placed shows up as an absent association, never as an
// error; the item's price snapshot and quantity stay intact.
func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.Product").Preload("User").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	return s.listOrders(s.db.Model(&models.Order{}), params)
}

func (s *OrderService) ListUserOrders(userID uuid.UUID, params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Where("user_id = ?", userID)
	return s.listOrders(query, params)
}

func (s *OrderService) listOrders(query *gorm.DB, params utils.PaginationParams) ([]models.Order, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Preload("Items.Product").Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// UpdateStatus overwrites the order status. Any member of the status set is
// accepted; there is no transition table.
func (s *OrderService) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, status)
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return s.GetOrder(id)
}
