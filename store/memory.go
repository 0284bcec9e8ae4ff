package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

// Memory is the default backend: the whole store lives in process
// memory and resets on restart. Catalog fixtures are loaded at
// construction; everything a shopper does is guarded by one RWMutex so
// concurrent requests never corrupt shared state.
type Memory struct {
	mu sync.RWMutex

	products     []models.Product
	promos       map[string]models.PromoCode
	carts        map[string][]models.CartItem
	cartPromos   map[string]string
	wishlists    map[string][]int64
	orders       map[int64]models.Order
	orderItems   map[int64][]models.OrderItem
	orderIDs     []int64
	profiles     map[string]models.Profile
	addresses    map[string][]models.Address
	contact      []models.ContactMessage

	nextCartItemID int64
	nextOrderID    int64
	nextItemID     int64
	nextAddressID  int64
	nextContactID  int64
	orderSeq       int64
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	m := &Memory{
		products:       Fixtures(),
		promos:         make(map[string]models.PromoCode),
		carts:          make(map[string][]models.CartItem),
		cartPromos:     make(map[string]string),
		wishlists:      make(map[string][]int64),
		orders:         make(map[int64]models.Order),
		orderItems:     make(map[int64][]models.OrderItem),
		profiles:       make(map[string]models.Profile),
		addresses:      make(map[string][]models.Address),
		nextCartItemID: 1,
		nextOrderID:    1,
		nextItemID:     1,
		nextAddressID:  1,
		nextContactID:  1,
	}
	for _, p := range PromoFixtures() {
		m.promos[strings.ToUpper(p.Code)] = p
	}
	return m
}

func (m *Memory) Close() {}

// ─────────────────────────────────────────────────────────────
// Products
// ─────────────────────────────────────────────────────────────

func (m *Memory) ListProducts(ctx context.Context, state query.State, page, limit int) ([]models.Product, int, error) {
	m.mu.RLock()
	active := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		if p.Status == models.ProductStatusActive {
			active = append(active, p)
		}
	}
	m.mu.RUnlock()

	matched := query.Apply(active, models.ProductAccessor(), state)
	return pageSlice(matched, page, limit), len(matched), nil
}

func (m *Memory) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == id && p.Status == models.ProductStatusActive {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) IncrementViews(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Views++
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) FilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meta := &models.FilterMetadata{Availability: &models.AvailabilityData{}}
	categories := make(map[string]int)
	sizes := make(map[string]int)
	colors := make(map[string]int)
	var minPrice, maxPrice float64
	first := true

	for _, p := range m.products {
		if p.Status != models.ProductStatusActive {
			continue
		}
		if p.InStock {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
		categories[p.Category]++
		for _, s := range p.Sizes {
			sizes[s]++
		}
		for _, c := range p.Colors {
			colors[c]++
		}
		if first || p.Price < minPrice {
			minPrice = p.Price
		}
		if first || p.Price > maxPrice {
			maxPrice = p.Price
		}
		first = false
	}

	meta.Categories = toOptions(categories)
	meta.Sizes = toOptions(sizes)
	meta.Colors = toOptions(colors)
	meta.PriceRange = &models.PriceRangeData{Min: minPrice, Max: maxPrice}
	return meta, nil
}

// titleCase upper-cases the leading letter of a facet value. Catalog
// facets are single lowercase ASCII words ("dresses", "pink", "m").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toOptions(counts map[string]int) []models.FilterOption {
	opts := make([]models.FilterOption, 0, len(counts))
	for value, count := range counts {
		opts = append(opts, models.FilterOption{
			Label: titleCase(value),
			Value: value,
			Count: count,
		})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Value < opts[j].Value })
	return opts
}

// ─────────────────────────────────────────────────────────────
// Cart
// ─────────────────────────────────────────────────────────────

func (m *Memory) GetCart(ctx context.Context, sessionID string) ([]models.CartItem, *models.PromoCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.CartItem, len(m.carts[sessionID]))
	copy(items, m.carts[sessionID])

	var promo *models.PromoCode
	if code, ok := m.cartPromos[sessionID]; ok {
		if p, found := m.promos[code]; found {
			promo = &p
		}
	}
	return items, promo, nil
}

func (m *Memory) AddCartItem(ctx context.Context, sessionID string, item models.CartItem) (models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[sessionID]
	for i := range items {
		if items[i].SameVariant(item) {
			items[i].Quantity += item.Quantity
			m.carts[sessionID] = items
			return items[i], nil
		}
	}

	item.ID = m.nextCartItemID
	m.nextCartItemID++
	item.SessionID = sessionID
	m.carts[sessionID] = append(items, item)
	return item, nil
}

func (m *Memory) UpdateCartItem(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[sessionID]
	for i := range items {
		if items[i].ID == itemID {
			if quantity <= 0 {
				m.carts[sessionID] = append(items[:i], items[i+1:]...)
				return nil
			}
			items[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) RemoveCartItem(ctx context.Context, sessionID string, itemID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[sessionID]
	for i := range items {
		if items[i].ID == itemID {
			m.carts[sessionID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ClearCart(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	delete(m.cartPromos, sessionID)
	return nil
}

func (m *Memory) ApplyPromo(ctx context.Context, sessionID, code string) (*models.PromoCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	promo, ok := m.promos[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || !promo.Active {
		return nil, ErrPromoInvalid
	}

	var subtotal float64
	for _, it := range m.carts[sessionID] {
		subtotal += it.Price * float64(it.Quantity)
	}
	if subtotal < promo.MinSubtotal {
		return nil, ErrPromoMinimum
	}

	m.cartPromos[sessionID] = promo.Code
	return &promo, nil
}

func (m *Memory) RemovePromo(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cartPromos, sessionID)
	return nil
}

// ─────────────────────────────────────────────────────────────
// Wishlist
// ─────────────────────────────────────────────────────────────

func (m *Memory) ListWishlist(ctx context.Context, sessionID string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Product
	for _, id := range m.wishlists[sessionID] {
		for _, p := range m.products {
			if p.ID == id && p.Status == models.ProductStatusActive {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *Memory) ToggleWishlist(ctx context.Context, sessionID string, productID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists := false
	for _, p := range m.products {
		if p.ID == productID && p.Status == models.ProductStatusActive {
			exists = true
			break
		}
	}
	if !exists {
		return false, ErrNotFound
	}

	ids := m.wishlists[sessionID]
	for i, id := range ids {
		if id == productID {
			m.wishlists[sessionID] = append(ids[:i], ids[i+1:]...)
			return false, nil
		}
	}
	m.wishlists[sessionID] = append(ids, productID)
	return true, nil
}

// ─────────────────────────────────────────────────────────────
// Orders
// ─────────────────────────────────────────────────────────────

func (m *Memory) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order.ID = m.nextOrderID
	m.nextOrderID++
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	stored := make([]models.OrderItem, len(items))
	for i, it := range items {
		it.ID = m.nextItemID
		m.nextItemID++
		it.OrderID = order.ID
		stored[i] = it
	}

	m.orders[order.ID] = *order
	m.orderItems[order.ID] = stored
	m.orderIDs = append(m.orderIDs, order.ID)
	return nil
}

func (m *Memory) ListOrders(ctx context.Context, sessionID string, state query.State, page, limit int) ([]models.OrderHistoryRow, int, error) {
	m.mu.RLock()
	rows := make([]models.OrderHistoryRow, 0)
	for _, id := range m.orderIDs {
		o := m.orders[id]
		if o.SessionID != sessionID {
			continue
		}
		rows = append(rows, models.OrderHistoryRow{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			ItemCount:   len(m.orderItems[o.ID]),
			CreatedAt:   o.CreatedAt,
		})
	}
	m.mu.RUnlock()

	matched := query.Apply(rows, models.OrderHistoryAccessor(), state)
	return pageSlice(matched, page, limit), len(matched), nil
}

func (m *Memory) GetOrder(ctx context.Context, sessionID string, orderID int64) (*models.OrderWithItems, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[orderID]
	if !ok || o.SessionID != sessionID {
		return nil, ErrNotFound
	}
	items := make([]models.OrderItem, len(m.orderItems[orderID]))
	copy(items, m.orderItems[orderID])
	return &models.OrderWithItems{Order: o, Items: items}, nil
}

func (m *Memory) NextOrderNumber(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orderSeq++
	return fmt.Sprintf("SON-%d-%06d", time.Now().UTC().Year(), m.orderSeq), nil
}

// ─────────────────────────────────────────────────────────────
// Profile, addresses, contact
// ─────────────────────────────────────────────────────────────

func (m *Memory) GetProfile(ctx context.Context, sessionID string) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.profiles[sessionID]; ok {
		return &p, nil
	}
	// A fresh session has an empty profile rather than a 404.
	return &models.Profile{SessionID: sessionID}, nil
}

func (m *Memory) SaveProfile(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile.UpdatedAt = time.Now().UTC()
	m.profiles[profile.SessionID] = *profile
	return nil
}

func (m *Memory) ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Address, len(m.addresses[sessionID]))
	copy(out, m.addresses[sessionID])
	return out, nil
}

func (m *Memory) AddAddress(ctx context.Context, address *models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	address.ID = m.nextAddressID
	m.nextAddressID++
	now := time.Now().UTC()
	address.CreatedAt = now
	address.UpdatedAt = now

	list := m.addresses[address.SessionID]
	if len(list) == 0 {
		address.IsDefault = true
	} else if address.IsDefault {
		for i := range list {
			list[i].IsDefault = false
		}
	}
	m.addresses[address.SessionID] = append(list, *address)
	return nil
}

func (m *Memory) UpdateAddress(ctx context.Context, sessionID string, address *models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.addresses[sessionID]
	for i := range list {
		if list[i].ID == address.ID {
			address.SessionID = sessionID
			address.CreatedAt = list[i].CreatedAt
			address.UpdatedAt = time.Now().UTC()
			address.IsDefault = list[i].IsDefault
			list[i] = *address
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteAddress(ctx context.Context, sessionID string, addressID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.addresses[sessionID]
	for i := range list {
		if list[i].ID == addressID {
			wasDefault := list[i].IsDefault
			list = append(list[:i], list[i+1:]...)
			if wasDefault && len(list) > 0 {
				list[0].IsDefault = true
			}
			m.addresses[sessionID] = list
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) SetDefaultAddress(ctx context.Context, sessionID string, addressID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.addresses[sessionID]
	found := false
	for i := range list {
		if list[i].ID == addressID {
			list[i].IsDefault = true
			found = true
		} else {
			list[i].IsDefault = false
		}
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (m *Memory) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = m.nextContactID
	m.nextContactID++
	msg.CreatedAt = time.Now().UTC()
	m.contact = append(m.contact, *msg)
	return nil
}

// pageSlice cuts one page out of the filtered result set.
func pageSlice[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
