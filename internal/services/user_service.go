// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shoply/shop-backend/internal/models"
	"github.com/shoply/shop-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type AddressRequest struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type CreateUserRequest struct {
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=6"`
	Address     *AddressRequest `json:"address,omitempty"`
	PhoneNumber string          `json:"phone_number,omitempty" validate:"omitempty,phone10"`
	IsAdmin     bool            `json:"is_admin,omitempty"`
}

type UpdateUserRequest struct {
	FirstName   string          `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    string          `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email       string          `json:"email,omitempty" validate:"omitempty,email"`
	Password    string          `json:"password,omitempty" validate:"omitempty,min=6"`
	Address     *AddressRequest `json:"address,omitempty"`
	PhoneNumber string          `json:"phone_number,omitempty" validate:"omitempty,phone10"`
	IsAdmin     *bool           `json:"is_admin,omitempty"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(req.Email)

	// Email is unique case-insensitively; the migration backs this with a
	// unique index on LOWER(email).
	var count int64
	if err := s.db.Model(&models.User{}).Where("LOWER(email) = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       email,
		PhoneNumber: req.PhoneNumber,
		IsAdmin:     req.IsAdmin,
	}
	if req.Address != nil {
		user.Address = addressFromRequest(req.Address)
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Wishlist.Product").Preload("Cart.Product").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "first_name", "last_name", "email"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, total, nil
}

func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	// Validate request before touching persisted state
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Email != "" {
		email := strings.ToLower(req.Email)
		if email != user.Email {
			var count int64
			if err := s.db.Model(&models.User{}).
				Where("LOWER(email) = ? AND id != ?", email, id).
				Count(&count).Error; err != nil {
				return nil, fmt.Errorf("database error: %w", err)
			}
			if count > 0 {
				return nil, ErrEmailTaken
			}
		}
		updates["email"] = email
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}
		updates["password_hash"] = user.PasswordHash
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
	}
	if req.Address != nil {
		addr := addressFromRequest(req.Address)
		updates["address_street"] = addr.Street
		updates["address_city"] = addr.City
		updates["address_state"] = addr.State
		updates["address_zip_code"] = addr.ZipCode
		updates["address_country"] = addr.Country
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	s.db.Preload("Wishlist.Product").Preload("Cart.Product").First(&user, id)
	return &user, nil
}

func (s *UserService) DeleteUser(id uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// AddToWishlist appends productID to the user's wishlist. Adding a product
// that is already present is a no-op and not an error.
func (s *UserService) AddToWishlist(userID, productID uuid.UUID) (*models.User, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Where("user_id = ?", userID).Find(&user.Wishlist).Error; err != nil {
			return fmt.Errorf("failed to load wishlist: %w", err)
		}

		if !user.AddToWishlist(productID) {
			return nil // already present
		}

		item := user.Wishlist[len(user.Wishlist)-1]
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to add to wishlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

// AddToCart merges quantity into the user's cart entry for productID, or
// appends a new entry. The cart holds at most one row per product.
func (s *UserService) AddToCart(userID, productID uuid.UUID, quantity int) (*models.User, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidArgument)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Where("user_id = ?", userID).Find(&user.Cart).Error; err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}

		if err := user.AddToCart(productID, quantity); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidArgument, err)
		}

		for i := range user.Cart {
			if user.Cart[i].ProductID != productID {
				continue
			}
			if user.Cart[i].ID == uuid.Nil {
				if err := tx.Create(&user.Cart[i]).Error; err != nil {
					return fmt.Errorf("failed to add to cart: %w", err)
				}
			} else {
				if err := tx.Model(&models.CartItem{}).
					Where("id = ?", user.Cart[i].ID).
					Update("quantity", user.Cart[i].Quantity).Error; err != nil {
					return fmt.Errorf("failed to update cart quantity: %w", err)
				}
			}
			break
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

// RemoveFromCart drops the user's cart entry for productID. Removing an
// absent product is a no-op.
func (s *UserService) RemoveFromCart(userID, productID uuid.UUID) (*models.User, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockUser(tx, userID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to remove from cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

func (s *UserService) GetCart(userID uuid.UUID) ([]models.CartItem, error) {
	if _, err := s.GetUser(userID); err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return items, nil
}

// lockUser takes the per-user row lock that serializes wishlist/cart
// mutations for one user.
func lockUser(tx *gorm.DB, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func addressFromRequest(req *AddressRequest) models.Address {
	return models.Address{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
	}
}
