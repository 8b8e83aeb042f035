// internal/models/user.go
package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	FirstName    string  `json:"first_name" gorm:"size:100;not null"`
	LastName     string  `json:"last_name" gorm:"size:100;not null"`
	Email        string  `json:"email" gorm:"size:255;not null"`
	PasswordHash string  `json:"-" gorm:"size:255;not null"`
	Address      Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	PhoneNumber  string  `json:"phone_number,omitempty" gorm:"size:20"`
	IsAdmin      bool    `json:"is_admin" gorm:"default:false"`

	// Relationships
	Wishlist []WishlistItem `json:"wishlist,omitempty" gorm:"foreignKey:UserID"`
	Cart     []CartItem     `json:"cart,omitempty" gorm:"foreignKey:UserID"`
}

// WishlistItem references a product a user saved for later. A user holds at
// most one entry per product.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// CartItem holds a product reference with a quantity of at least 1. A user
// holds at most one entry per product; quantities merge on insert.
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// FullName joins first and last name with a single space.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// AddToWishlist appends productID unless it is already present. It reports
// whether the wishlist changed, so callers can skip the write on a repeat.
func (u *User) AddToWishlist(productID uuid.UUID) bool {
	for _, item := range u.Wishlist {
		if item.ProductID == productID {
			return false
		}
	}
	u.Wishlist = append(u.Wishlist, WishlistItem{UserID: u.ID, ProductID: productID})
	return true
}

// AddToCart merges quantity into an existing entry for productID, or appends
// a new one. Quantity must be at least 1.
func (u *User) AddToCart(productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	for i := range u.Cart {
		if u.Cart[i].ProductID == productID {
			u.Cart[i].Quantity += quantity
			return nil
		}
	}
	u.Cart = append(u.Cart, CartItem{UserID: u.ID, ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveFromCart drops every entry for productID and reports whether
// anything was removed. Removing an absent product is a no-op.
func (u *User) RemoveFromCart(productID uuid.UUID) bool {
	filtered := u.Cart[:0]
	removed := false
	for _, item := range u.Cart {
		if item.ProductID == productID {
			removed = true
			continue
		}
		filtered = append(filtered, item)
	}
	u.Cart = filtered
	return removed
}
