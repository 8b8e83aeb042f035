// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shoply/shop-backend/internal/models"
	"github.com/shoply/shop-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"min=0"`
	Category    string   `json:"category" validate:"required,product_category"`
	Quantity    int      `json:"quantity" validate:"min=0"`
	InStock     *bool    `json:"in_stock,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,max=255"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Category    string   `json:"category,omitempty" validate:"omitempty,product_category"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
	InStock     *bool    `json:"in_stock,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	InStock  *bool    `json:"in_stock,omitempty"`
}

type AddRatingRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Rating int       `json:"rating"`
	Review string    `json:"review,omitempty"`
}

type ApplyDiscountRequest struct {
	Percentage float64 `json:"percentage"`
}

type CategoryStat struct {
	Category models.ProductCategory `json:"category"`
	Count    int64                  `json:"count"`
	AvgPrice float64                `json:"avg_price"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// pqStringArray keeps tag filters typed the same way the column is.
func pqStringArray(s []string) pq.StringArray {
	return pq.StringArray(s)
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    models.ProductCategory(req.Category),
		InStock:     inStock,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		Tags:        pqStringArray(req.Tags),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Ratings").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request before touching persisted state
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Tags != nil {
		updates["tags"] = pqStringArray(req.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	s.db.Preload("Ratings").First(&product, id)
	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete; orders keep their item snapshots and users keep their
	// wishlist/cart references, which read paths resolve as missing.
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Ratings")

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", pqStringArray(params.Tags))
	}

	if params.InStock != nil && *params.InStock {
		query = query.Where("quantity > 0")
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "quantity"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) FindByCategory(category string) ([]models.Product, error) {
	if !models.ProductCategory(category).IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, category)
	}

	var products []models.Product
	if err := s.db.Preload("Ratings").
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products by category: %w", err)
	}
	return products, nil
}

// FindByPriceRange returns products priced within [min, max], both ends
// inclusive.
func (s *ProductService) FindByPriceRange(min, max float64) ([]models.Product, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("%w: invalid price range [%v, %v]", ErrInvalidArgument, min, max)
	}

	var products []models.Product
	if err := s.db.Preload("Ratings").
		Where("price >= ? AND price <= ?", min, max).
		Order("price ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products by price range: %w", err)
	}
	return products, nil
}

func (s *ProductService) SearchByText(text string) ([]models.Product, error) {
	searchTerm := "%" + strings.ToLower(text) + "%"

	var products []models.Product
	if err := s.db.Preload("Ratings").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// ApplyDiscount reduces the product price by the given percentage inside a
// row-locked transaction, so concurrent discounts on the same product do not
// lose updates.
func (s *ProductService) ApplyDiscount(id uuid.UUID, percentage float64) (*models.Product, error) {
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: discount percentage must be between 0 and 100", ErrInvalidArgument)
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := product.ApplyDiscount(percentage); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidArgument, err)
		}

		if err := tx.Model(&product).Update("price", product.Price).Error; err != nil {
			return fmt.Errorf("failed to persist discounted price: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// AddRating appends a review with a server-assigned timestamp and returns
// the product with its ratings reloaded.
func (s *ProductService) AddRating(productID uuid.UUID, req *AddRatingRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		rating := &models.Rating{
			ProductID: productID,
			UserID:    req.UserID,
			Rating:    req.Rating,
			Review:    req.Review,
			Date:      time.Now(),
		}
		if err := tx.Create(rating).Error; err != nil {
			return fmt.Errorf("failed to create rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Ratings").First(&product, productID)
	return &product, nil
}

// CategoryStats groups the catalog by category with a count and average
// price per group.
func (s *ProductService) CategoryStats() ([]CategoryStat, error) {
	var stats []CategoryStat
	if err := s.db.Model(&models.Product{}).
		Select("category, COUNT(*) AS count, AVG(price) AS avg_price").
		Group("category").
		Order("category ASC").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to compute category stats: %w", err)
	}
	return stats, nil
}
