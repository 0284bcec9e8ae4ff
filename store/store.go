// Package store is the repository layer behind the storefront
// handlers. Two backends implement it: an in-memory one seeded with
// the catalog fixtures (the default; state resets on restart) and a
// Postgres one for durable deployments.
package store

import (
	"context"
	"errors"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrPromoInvalid = errors.New("promo code is not valid")
	ErrPromoMinimum = errors.New("cart subtotal is below the promo minimum")
)

// ProductStore serves the catalog list pages and product details.
type ProductStore interface {
	// ListProducts returns one page of active products matching the
	// query state, plus the total match count before paging.
	ListProducts(ctx context.Context, state query.State, page, limit int) ([]models.Product, int, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	IncrementViews(ctx context.Context, id int64) error
	FilterMetadata(ctx context.Context) (*models.FilterMetadata, error)
}

// CartStore keeps one cart per session.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) ([]models.CartItem, *models.PromoCode, error)
	AddCartItem(ctx context.Context, sessionID string, item models.CartItem) (models.CartItem, error)
	UpdateCartItem(ctx context.Context, sessionID string, itemID int64, quantity int) error
	RemoveCartItem(ctx context.Context, sessionID string, itemID int64) error
	ClearCart(ctx context.Context, sessionID string) error
	ApplyPromo(ctx context.Context, sessionID, code string) (*models.PromoCode, error)
	RemovePromo(ctx context.Context, sessionID string) error
}

type WishlistStore interface {
	ListWishlist(ctx context.Context, sessionID string) ([]models.Product, error)
	// ToggleWishlist adds the product when absent and removes it when
	// present, reporting which happened.
	ToggleWishlist(ctx context.Context, sessionID string, productID int64) (added bool, err error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
	ListOrders(ctx context.Context, sessionID string, state query.State, page, limit int) ([]models.OrderHistoryRow, int, error)
	GetOrder(ctx context.Context, sessionID string, orderID int64) (*models.OrderWithItems, error)
	NextOrderNumber(ctx context.Context) (string, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, sessionID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
	ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error)
	AddAddress(ctx context.Context, address *models.Address) error
	UpdateAddress(ctx context.Context, sessionID string, address *models.Address) error
	DeleteAddress(ctx context.Context, sessionID string, addressID int64) error
	SetDefaultAddress(ctx context.Context, sessionID string, addressID int64) error
	SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// Store is the full backend contract the server wires against.
type Store interface {
	ProductStore
	CartStore
	WishlistStore
	OrderStore
	ProfileStore
	Close()
}
