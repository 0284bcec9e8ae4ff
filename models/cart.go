package models

import "math"

// Checkout pricing rules. Shipping is flat below the free-shipping
// threshold and tax applies to the discounted subtotal.
const (
	TaxRate              = 0.08
	FreeShippingAt       = 100.0
	StandardShippingCost = 5.99
)

const (
	PromoPercent      = "percent"
	PromoFixed        = "fixed"
	PromoFreeShipping = "free_shipping"
)

// PromoCode is a storefront discount code.
type PromoCode struct {
	Code        string  `json:"code" gorm:"primaryKey"`
	Kind        string  `json:"kind" gorm:"not null;check:kind IN ('percent', 'fixed', 'free_shipping')"`
	Value       float64 `json:"value" gorm:"type:numeric(12,2);default:0"`
	MinSubtotal float64 `json:"min_subtotal" gorm:"type:numeric(12,2);default:0"`
	Active      bool    `json:"active" gorm:"default:true"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

type CartItem struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID string  `json:"-" gorm:"not null;index"`
	ProductID int64   `json:"product_id" gorm:"not null"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
	Price     float64 `json:"price" gorm:"type:numeric(12,2)"`
	Quantity  int     `json:"quantity" gorm:"not null;check:quantity > 0"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// SameVariant reports whether two cart lines are the same product in
// the same size and color, and should be merged instead of duplicated.
func (i CartItem) SameVariant(other CartItem) bool {
	return i.ProductID == other.ProductID &&
		strPtrEq(i.Size, other.Size) &&
		strPtrEq(i.Color, other.Color)
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Cart is the full server-side view of one session's cart.
type Cart struct {
	Items  []CartItem `json:"items"`
	Promo  *PromoCode `json:"promo,omitempty"`
	Totals CartTotals `json:"totals"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1,max=99"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0,max=99"`
}

type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required,min=3,max=32"`
}

// ═══════════════════════════════════════════════════════════
// Totals
// ═══════════════════════════════════════════════════════════

// ComputeCartTotals derives the money figures from the cart lines and
// an optionally applied promo. A promo below its minimum subtotal
// contributes nothing; a fixed discount never exceeds the subtotal.
func ComputeCartTotals(items []CartItem, promo *PromoCode) CartTotals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = RoundCents(subtotal)

	var discount float64
	freeShipping := false
	if promo != nil && promo.Active && subtotal >= promo.MinSubtotal {
		switch promo.Kind {
		case PromoPercent:
			discount = RoundCents(subtotal * promo.Value / 100)
		case PromoFixed:
			discount = RoundCents(math.Min(promo.Value, subtotal))
		case PromoFreeShipping:
			freeShipping = true
		}
	}

	shipping := 0.0
	if len(items) > 0 && !freeShipping && subtotal < FreeShippingAt {
		shipping = StandardShippingCost
	}

	taxable := subtotal - discount
	tax := RoundCents(taxable * TaxRate)

	return CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    RoundCents(taxable + shipping + tax),
	}
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
