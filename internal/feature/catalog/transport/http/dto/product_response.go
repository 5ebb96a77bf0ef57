package dto

import (
	"time"

	"shopp_backend/internal/feature/catalog/domain/entity"
)

// ProductItem represents a product in API responses.
// The json field names are part of the storefront contract.
type ProductItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Available bool      `json:"available"`
	Date      time.Time `json:"date"`
}

// FromEntity converts a domain product to its API representation.
func FromEntity(p entity.Product) ProductItem {
	return ProductItem{
		ID:        p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Category:  p.Category,
		NewPrice:  p.NewPrice,
		OldPrice:  p.OldPrice,
		Available: p.Available,
		Date:      p.CreatedAt,
	}
}

// FromEntities converts a slice of domain products, preserving order.
func FromEntities(products []entity.Product) []ProductItem {
	out := make([]ProductItem, 0, len(products))
	for _, p := range products {
		out = append(out, FromEntity(p))
	}
	return out
}
