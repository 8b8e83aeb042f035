// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shoply/shop-backend/internal/models"
)

var validate *validator.Validate

var phonePattern = regexp.MustCompile(`^\d{10}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("product_category", validateProductCategory)
	validate.RegisterValidation("phone10", validatePhoneNumber)
	validate.RegisterValidation("order_status", validateOrderStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateProductCategory(fl validator.FieldLevel) bool {
	return models.ProductCategory(fl.Field().String()).IsValid()
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).IsValid()
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "product_category":
		return "Category must be one of Electronics, Clothing, Books, Home & Garden, Sports, Other"
	case "order_status":
		return "Status must be one of pending, processing, shipped, delivered, cancelled"
	case "phone10":
		return "Phone number must be 10 digits"
	default:
		return e.Field() + " is invalid"
	}
}
