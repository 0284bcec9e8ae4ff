package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// StringList is a jsonb-backed string slice (sizes, colors).
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model
// ═══════════════════════════════════════════════════════════

const (
	ProductStatusActive = "Active"
	ProductStatusDraft  = "Draft"
)

// Facet names the storefront filters on.
const (
	FacetCategory     = "category"
	FacetSize         = "size"
	FacetColor        = "color"
	FacetAvailability = "availability"
	FacetStatus       = "status"
)

type Product struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"not null;index"`
	Description string     `json:"description" gorm:"not null"`
	Price       float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Category    string     `json:"category" gorm:"not null;index"`
	Sizes       StringList `json:"sizes" gorm:"type:jsonb;not null;default:'[]'"`
	Colors      StringList `json:"colors" gorm:"type:jsonb;not null;default:'[]'"`
	Image       string     `json:"image"`
	Rating      float64    `json:"rating" gorm:"type:numeric(3,2);default:0"`
	ReviewCount int        `json:"review_count" gorm:"default:0"`
	Featured    bool       `json:"featured" gorm:"default:false;index"`
	Bestseller  bool       `json:"bestseller" gorm:"default:false"`
	InStock     bool       `json:"in_stock" gorm:"default:true"`
	Status      string     `json:"status,omitempty" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	Views       int        `json:"views,omitempty" gorm:"default:0"`
	DateAdded   time.Time  `json:"date_added" gorm:"not null;index:idx_products_date_added,sort:desc"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ProductAccessor wires Product into the query pipeline: which fields
// carry the search text, the facets, and the sort comparators.
func ProductAccessor() query.Accessor[Product] {
	return query.Accessor[Product]{
		Title:       func(p Product) string { return p.Name },
		Description: func(p Product) string { return p.Description },
		Price:       func(p Product) float64 { return p.Price },
		Date:        func(p Product) time.Time { return p.DateAdded },
		Rating:      func(p Product) float64 { return p.Rating },
		Featured:    func(p Product) bool { return p.Featured },
		Bestseller:  func(p Product) bool { return p.Bestseller },
		Facet: func(p Product, name string) []string {
			switch name {
			case FacetCategory:
				return []string{p.Category}
			case FacetSize:
				return p.Sizes
			case FacetColor:
				return p.Colors
			case FacetAvailability:
				if p.InStock {
					return []string{"in_stock"}
				}
				return []string{"out_of_stock"}
			}
			return nil
		},
	}
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductCardResponse is the thin shape rendered on list pages.
type ProductCardResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
}

func (p Product) ToCard() ProductCardResponse {
	return ProductCardResponse{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Category:    p.Category,
		InStock:     p.InStock,
	}
}

func ToCards(products []Product) []ProductCardResponse {
	cards := make([]ProductCardResponse, len(products))
	for i, p := range products {
		cards[i] = p.ToCard()
	}
	return cards
}
