// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Products
	KeyProductCreated      = "product.created"
	KeyProductUpdated      = "product.updated"
	KeyProductDeleted      = "product.deleted"
	KeyProductNotFound     = "product.not_found"
	KeyProductDiscounted   = "product.discounted"
	KeyProductRatingAdded  = "product.rating_added"
	KeyProductOutOfStock   = "product.out_of_stock"

	// Users
	KeyUserCreated         = "user.created"
	KeyUserUpdated         = "user.updated"
	KeyUserDeleted         = "user.deleted"
	KeyUserNotFound        = "user.not_found"
	KeyUserEmailTaken      = "user.email_taken"
	KeyUserWishlistUpdated = "user.wishlist_updated"
	KeyUserCartUpdated     = "user.cart_updated"

	// Orders
	KeyOrderCreated       = "order.created"
	KeyOrderNotFound      = "order.not_found"
	KeyOrderStatusUpdated = "order.status_updated"
	KeyOrderEmptyItems    = "order.empty_items"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationTooShort = "validation.too_short"
	KeyValidationEmail    = "validation.invalid_email"
)
