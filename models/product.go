package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory classifies catalog products
type ProductCategory string

const (
	CategoryProduce   ProductCategory = "produce"
	CategoryDairy     ProductCategory = "dairy"
	CategoryLivestock ProductCategory = "livestock"
	CategoryGrains    ProductCategory = "grains"
)

// Valid reports whether c is one of the known categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryProduce, CategoryDairy, CategoryLivestock, CategoryGrains:
		return true
	}
	return false
}

// Product is a mutable catalog entry owned by a farmer. Carts, wishlists and
// orders never reference it by id; they embed a ProductSnapshot taken at the
// moment of the action, so later catalog edits have no retroactive effect.
type Product struct {
	ID          string          `json:"id"`
	FarmerID    string          `json:"farmer_id"`
	FarmerName  string          `json:"farmer_name"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"` // per kg, per piece, per liter, etc.
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Stock       int             `json:"stock"`
	Location    string          `json:"location"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductSnapshot is an immutable copy of a Product at a point in time.
type ProductSnapshot struct {
	ID          string          `json:"id"`
	FarmerID    string          `json:"farmer_id"`
	FarmerName  string          `json:"farmer_name"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Stock       int             `json:"stock"` // stock level when the snapshot was taken
	Location    string          `json:"location"`
}

// Snapshot copies the product's current values into an immutable snapshot.
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:          p.ID,
		FarmerID:    p.FarmerID,
		FarmerName:  p.FarmerName,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Unit:        p.Unit,
		Description: p.Description,
		Image:       p.Image,
		Stock:       p.Stock,
		Location:    p.Location,
	}
}
