// internal/models/product.go
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrBadDiscount = errors.New("discount percentage must be between 0 and 100")

type Product struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       float64         `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(50);not null;index"`
	InStock     bool            `json:"in_stock" gorm:"default:true"`
	Quantity    int             `json:"quantity" gorm:"not null;default:0"`
	ImageURL    string          `json:"image_url" gorm:"size:512"`
	Tags        pq.StringArray  `json:"tags" gorm:"type:text[]"`

	// Relationships
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:ProductID"`
}

// Rating is a single review left on a product. Date is server-assigned.
type Rating struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Review    string    `json:"review" gorm:"type:text"`
	Date      time.Time `json:"date"`
}

// AverageRating is the arithmetic mean of the rating values, 0 when the
// product has no ratings. Computed on read, never stored.
func (p *Product) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Ratings))
}

// IsInStock reports whether any quantity remains, regardless of the
// stored InStock flag.
func (p *Product) IsInStock() bool {
	return p.Quantity > 0
}

// DisplayName renders the product name with its price, e.g. "iPhone - $999.00".
func (p *Product) DisplayName() string {
	return fmt.Sprintf("%s - $%.2f", p.Name, p.Price)
}

// ApplyDiscount reduces the price by percentage. The change is in-memory
// only; the caller persists it.
func (p *Product) ApplyDiscount(percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return ErrBadDiscount
	}
	p.Price = p.Price * (1 - percentage/100)
	return nil
}

// AddRating appends a review with a server-assigned timestamp. The rating
// value must be in [1,5].
func (p *Product) AddRating(userID uuid.UUID, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	p.Ratings = append(p.Ratings, Rating{
		ProductID: p.ID,
		UserID:    userID,
		Rating:    rating,
		Review:    review,
		Date:      time.Now(),
	})
	return nil
}
