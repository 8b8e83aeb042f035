// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	user := &User{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", user.FullName())
}

func TestAddToWishlistIdempotent(t *testing.T) {
	user := &User{}
	productID := uuid.New()

	assert.True(t, user.AddToWishlist(productID))
	require.Len(t, user.Wishlist, 1)

	// Second add with the same product changes nothing
	assert.False(t, user.AddToWishlist(productID))
	assert.Len(t, user.Wishlist, 1)
	assert.Equal(t, productID, user.Wishlist[0].ProductID)
}

func TestAddToWishlistDistinctProducts(t *testing.T) {
	user := &User{}

	assert.True(t, user.AddToWishlist(uuid.New()))
	assert.True(t, user.AddToWishlist(uuid.New()))
	assert.Len(t, user.Wishlist, 2)
}

func TestAddToCartMergesQuantities(t *testing.T) {
	user := &User{}
	productID := uuid.New()

	require.NoError(t, user.AddToCart(productID, 2))
	require.NoError(t, user.AddToCart(productID, 3))

	require.Len(t, user.Cart, 1)
	assert.Equal(t, productID, user.Cart[0].ProductID)
	assert.Equal(t, 5, user.Cart[0].Quantity)
}

func TestAddToCartRejectsBadQuantity(t *testing.T) {
	user := &User{}
	productID := uuid.New()

	assert.Error(t, user.AddToCart(productID, 0))
	assert.Error(t, user.AddToCart(productID, -1))
	assert.Empty(t, user.Cart)
}

func TestAddToCartDistinctProducts(t *testing.T) {
	user := &User{}
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, user.AddToCart(first, 1))
	require.NoError(t, user.AddToCart(second, 4))

	require.Len(t, user.Cart, 2)
	assert.Equal(t, 1, user.Cart[0].Quantity)
	assert.Equal(t, 4, user.Cart[1].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	user := &User{}
	keep := uuid.New()
	drop := uuid.New()

	require.NoError(t, user.AddToCart(keep, 1))
	require.NoError(t, user.AddToCart(drop, 2))

	assert.True(t, user.RemoveFromCart(drop))
	require.Len(t, user.Cart, 1)
	assert.Equal(t, keep, user.Cart[0].ProductID)

	// Removing again is a no-op
	assert.False(t, user.RemoveFromCart(drop))
	assert.Len(t, user.Cart, 1)
}

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("secret123"))

	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret123"))
	assert.Error(t, user.CheckPassword("wrong"))
}
