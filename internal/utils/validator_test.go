// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorFixture struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=6"`
	Category    string `validate:"omitempty,product_category"`
	PhoneNumber string `validate:"omitempty,phone10"`
	Status      string `validate:"omitempty,order_status"`
}

func TestValidateStructOK(t *testing.T) {
	err := ValidateStruct(validatorFixture{
		Email:       "jane@example.com",
		Password:    "secret1",
		Category:    "Home & Garden",
		PhoneNumber: "0912345678",
		Status:      "shipped",
	})
	assert.NoError(t, err)
}

func TestValidateStructBadEmail(t *testing.T) {
	err := ValidateStruct(validatorFixture{
		Email:    "not-an-email",
		Password: "secret1",
	})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email", errs[0].Tag)
	assert.Equal(t, "Invalid email format", errs[0].Message)
}

func TestValidateStructBadCategory(t *testing.T) {
	err := ValidateStruct(validatorFixture{
		Email:    "jane@example.com",
		Password: "secret1",
		Category: "Groceries",
	})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "category", errs[0].Field)
	assert.Equal(t, "product_category", errs[0].Tag)
}

func TestValidateStructBadPhone(t *testing.T) {
	for _, phone := range []string{"12345", "12345678901", "09-1234567", "abcdefghij"} {
		err := ValidateStruct(validatorFixture{
			Email:       "jane@example.com",
			Password:    "secret1",
			PhoneNumber: phone,
		})
		require.Error(t, err, phone)

		errs := GetValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "phone10", errs[0].Tag)
		assert.Equal(t, "Phone number must be 10 digits", errs[0].Message)
	}
}

func TestValidateStructBadStatus(t *testing.T) {
	err := ValidateStruct(validatorFixture{
		Email:    "jane@example.com",
		Password: "secret1",
		Status:   "returned",
	})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "order_status", errs[0].Tag)
}

func TestValidateStructShortPassword(t *testing.T) {
	err := ValidateStruct(validatorFixture{
		Email:    "jane@example.com",
		Password: "abc",
	})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "min", errs[0].Tag)
	assert.Equal(t, "Password must be at least 6", errs[0].Message)
}

func TestGetValidationErrorsNonValidatorError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
