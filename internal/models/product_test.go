// internal/models/product_test.go
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRatingEmpty(t *testing.T) {
	product := &Product{Name: "Widget"}
	assert.Equal(t, 0.0, product.AverageRating())
}

func TestAverageRating(t *testing.T) {
	product := &Product{
		Name: "Widget",
		Ratings: []Rating{
			{Rating: 4},
			{Rating: 5},
			{Rating: 3},
		},
	}
	assert.InDelta(t, 4.0, product.AverageRating(), 1e-9)
}

func TestAverageRatingIncreasesWithFiveStar(t *testing.T) {
	product := &Product{
		Name: "Widget",
		Ratings: []Rating{
			{Rating: 2},
			{Rating: 3},
		},
	}

	before := product.AverageRating()
	err := product.AddRating(uuid.New(), 5, "great")
	require.NoError(t, err)

	assert.Greater(t, product.AverageRating(), before)
}

func TestAddRating(t *testing.T) {
	product := &Product{Name: "Widget"}
	userID := uuid.New()

	err := product.AddRating(userID, 4, "solid")
	require.NoError(t, err)
	require.Len(t, product.Ratings, 1)

	added := product.Ratings[0]
	assert.Equal(t, userID, added.UserID)
	assert.Equal(t, 4, added.Rating)
	assert.Equal(t, "solid", added.Review)
	assert.WithinDuration(t, time.Now(), added.Date, time.Second)
}

func TestAddRatingOutOfRange(t *testing.T) {
	product := &Product{Name: "Widget"}

	assert.Error(t, product.AddRating(uuid.New(), 0, ""))
	assert.Error(t, product.AddRating(uuid.New(), 6, ""))
	assert.Empty(t, product.Ratings)
}

func TestIsInStock(t *testing.T) {
	product := &Product{Quantity: 3, InStock: false}
	assert.True(t, product.IsInStock())

	product.Quantity = 0
	product.InStock = true
	assert.False(t, product.IsInStock())
}

func TestDisplayName(t *testing.T) {
	product := &Product{Name: "iPhone", Price: 999}
	assert.Equal(t, "iPhone - $999.00", product.DisplayName())

	product = &Product{Name: "Mug", Price: 7.5}
	assert.Equal(t, "Mug - $7.50", product.DisplayName())
}

func TestApplyDiscount(t *testing.T) {
	product := &Product{Name: "Widget", Price: 100}

	err := product.ApplyDiscount(10)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, product.Price, 1e-9)
}

func TestApplyDiscountOutOfRange(t *testing.T) {
	product := &Product{Name: "Widget", Price: 100}

	err := product.ApplyDiscount(150)
	assert.ErrorIs(t, err, ErrBadDiscount)
	assert.Equal(t, 100.0, product.Price)

	err = product.ApplyDiscount(-5)
	assert.ErrorIs(t, err, ErrBadDiscount)
	assert.Equal(t, 100.0, product.Price)
}

func TestApplyDiscountBounds(t *testing.T) {
	product := &Product{Name: "Widget", Price: 80}
	require.NoError(t, product.ApplyDiscount(0))
	assert.Equal(t, 80.0, product.Price)

	require.NoError(t, product.ApplyDiscount(100))
	assert.Equal(t, 0.0, product.Price)
}

func TestProductCategoryIsValid(t *testing.T) {
	for _, category := range ProductCategories() {
		assert.True(t, category.IsValid(), string(category))
	}

	assert.False(t, ProductCategory("Groceries").IsValid())
	assert.False(t, ProductCategory("").IsValid())
}
