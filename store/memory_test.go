package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

var ctx = context.Background()

// ─────────────────────────────────────────────────────────────
// Products
// ─────────────────────────────────────────────────────────────

func TestMemoryListProductsDefaults(t *testing.T) {
	m := NewMemory()
	page1, total, err := m.ListProducts(ctx, query.DefaultState(), 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if total != len(Fixtures()) {
		t.Fatalf("total = %d", total)
	}
	if len(page1) != 12 {
		t.Fatalf("page 1 has %d items", len(page1))
	}

	page2, _, err := m.ListProducts(ctx, query.DefaultState(), 2, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(page2) != total-12 {
		t.Fatalf("page 2 has %d items", len(page2))
	}
	if page1[0].ID == page2[0].ID {
		t.Fatal("pages overlap")
	}

	empty, _, err := m.ListProducts(ctx, query.DefaultState(), 3, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("past-the-end page has %d items", len(empty))
	}
}

func TestMemoryListProductsSearch(t *testing.T) {
	m := NewMemory()
	st := query.DefaultState()
	st.SetSearch("floral")

	got, total, err := m.ListProducts(ctx, st, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(got) != 1 {
		t.Fatalf("got %d/%d results", len(got), total)
	}
	if got[0].Name != "Floral Summer Dress" {
		t.Fatalf("got %q", got[0].Name)
	}
}

func TestMemoryListProductsFacets(t *testing.T) {
	m := NewMemory()

	st := query.DefaultState()
	st.SetFacet(models.FacetCategory, "dresses")
	_, total, err := m.ListProducts(ctx, st, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if total != 6 {
		t.Fatalf("dresses total = %d", total)
	}

	st = query.DefaultState()
	st.SetFacet(models.FacetAvailability, "in_stock")
	got, total, err := m.ListProducts(ctx, st, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if total != 17 {
		t.Fatalf("in-stock total = %d", total)
	}
	for _, p := range got {
		if !p.InStock {
			t.Fatalf("out-of-stock product %d leaked through", p.ID)
		}
	}
}

func TestMemoryListProductsPriceAndSort(t *testing.T) {
	m := NewMemory()

	st := query.DefaultState()
	st.SetPriceRange(59.99, 59.99)
	_, total, err := m.ListProducts(ctx, st, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Fatalf("exact-price total = %d", total)
	}

	st = query.DefaultState()
	st.SetSort(query.SortPriceLow)
	got, _, err := m.ListProducts(ctx, st, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Fatalf("price-low order broken at %d: %v after %v", i, got[i].Price, got[i-1].Price)
		}
	}
	if got[0].Name != "Satin Camisole" {
		t.Fatalf("cheapest product = %q", got[0].Name)
	}
}

func TestMemoryGetProduct(t *testing.T) {
	m := NewMemory()

	p, err := m.GetProduct(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Floral Summer Dress" {
		t.Fatalf("got %q", p.Name)
	}

	if _, err := m.GetProduct(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing product: err = %v", err)
	}
}

func TestMemoryIncrementViews(t *testing.T) {
	m := NewMemory()
	before, _ := m.GetProduct(ctx, 1)
	if err := m.IncrementViews(ctx, 1); err != nil {
		t.Fatal(err)
	}
	after, _ := m.GetProduct(ctx, 1)
	if after.Views != before.Views+1 {
		t.Fatalf("views %d -> %d", before.Views, after.Views)
	}
}

func TestMemoryFilterMetadata(t *testing.T) {
	m := NewMemory()
	meta, err := m.FilterMetadata(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if meta.Availability.InStock != 17 || meta.Availability.OutOfStock != 3 {
		t.Errorf("availability = %+v", meta.Availability)
	}
	if meta.PriceRange.Min != 24.50 || meta.PriceRange.Max != 189.00 {
		t.Errorf("price range = %+v", meta.PriceRange)
	}

	var dresses *models.FilterOption
	for i := range meta.Categories {
		if meta.Categories[i].Value == "dresses" {
			dresses = &meta.Categories[i]
		}
	}
	if dresses == nil || dresses.Count != 6 {
		t.Errorf("dresses option = %+v", dresses)
	}
	if dresses != nil && dresses.Label != "Dresses" {
		t.Errorf("dresses label = %q, want %q", dresses.Label, "Dresses")
	}
	for i := 1; i < len(meta.Sizes); i++ {
		if meta.Sizes[i].Value < meta.Sizes[i-1].Value {
			t.Fatalf("size options not sorted: %q after %q", meta.Sizes[i].Value, meta.Sizes[i-1].Value)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"m":       "M",
		"pink":    "Pink",
		"dresses": "Dresses",
		"XL":      "XL",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

// ─────────────────────────────────────────────────────────────
// Cart
// ─────────────────────────────────────────────────────────────

func size(s string) *string { return &s }

func TestMemoryCartMergesSameVariant(t *testing.T) {
	m := NewMemory()
	sid := "session-a"

	first, err := m.AddCartItem(ctx, sid, models.CartItem{ProductID: 1, Size: size("M"), Price: 59.99, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	merged, err := m.AddCartItem(ctx, sid, models.CartItem{ProductID: 1, Size: size("M"), Price: 59.99, Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if merged.ID != first.ID || merged.Quantity != 3 {
		t.Fatalf("merge: id=%d quantity=%d", merged.ID, merged.Quantity)
	}

	// A different size is its own line.
	other, err := m.AddCartItem(ctx, sid, models.CartItem{ProductID: 1, Size: size("L"), Price: 59.99, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == first.ID {
		t.Fatal("different variant merged into the same line")
	}

	items, _, err := m.GetCart(ctx, sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("cart has %d lines", len(items))
	}
}

func TestMemoryUpdateCartItem(t *testing.T) {
	m := NewMemory()
	sid := "session-a"
	item, _ := m.AddCartItem(ctx, sid, models.CartItem{ProductID: 3, Price: 44.50, Quantity: 2})

	if err := m.UpdateCartItem(ctx, sid, item.ID, 5); err != nil {
		t.Fatal(err)
	}
	items, _, _ := m.GetCart(ctx, sid)
	if items[0].Quantity != 5 {
		t.Fatalf("quantity = %d", items[0].Quantity)
	}

	// Quantity zero removes the line.
	if err := m.UpdateCartItem(ctx, sid, item.ID, 0); err != nil {
		t.Fatal(err)
	}
	items, _, _ = m.GetCart(ctx, sid)
	if len(items) != 0 {
		t.Fatalf("cart has %d lines after zero-quantity update", len(items))
	}

	if err := m.UpdateCartItem(ctx, sid, 999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing item: err = %v", err)
	}
}

func TestMemoryCartIsPerSession(t *testing.T) {
	m := NewMemory()
	m.AddCartItem(ctx, "session-a", models.CartItem{ProductID: 1, Quantity: 1})

	items, _, err := m.GetCart(ctx, "session-b")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("session-b sees %d foreign items", len(items))
	}
	if err := m.RemoveCartItem(ctx, "session-b", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-session remove: err = %v", err)
	}
}

func TestMemoryApplyPromo(t *testing.T) {
	m := NewMemory()
	sid := "session-a"
	m.AddCartItem(ctx, sid, models.CartItem{ProductID: 1, Price: 59.99, Quantity: 1})

	// Lookup is case-insensitive and trimmed.
	promo, err := m.ApplyPromo(ctx, sid, "  welcome10 ")
	if err != nil {
		t.Fatal(err)
	}
	if promo.Code != "WELCOME10" {
		t.Fatalf("applied %q", promo.Code)
	}

	_, applied, err := m.GetCart(ctx, sid)
	if err != nil {
		t.Fatal(err)
	}
	if applied == nil || applied.Code != "WELCOME10" {
		t.Fatalf("promo not persisted: %+v", applied)
	}

	if _, err := m.ApplyPromo(ctx, sid, "BOGUS"); !errors.Is(err, ErrPromoInvalid) {
		t.Errorf("unknown code: err = %v", err)
	}
	// SPRING5 exists but is inactive.
	if _, err := m.ApplyPromo(ctx, sid, "SPRING5"); !errors.Is(err, ErrPromoInvalid) {
		t.Errorf("inactive code: err = %v", err)
	}
	// SONAA20 needs a 100.00 subtotal; the cart holds 59.99.
	if _, err := m.ApplyPromo(ctx, sid, "SONAA20"); !errors.Is(err, ErrPromoMinimum) {
		t.Errorf("below-minimum code: err = %v", err)
	}

	// Failed attempts never replace the applied promo.
	_, applied, _ = m.GetCart(ctx, sid)
	if applied == nil || applied.Code != "WELCOME10" {
		t.Fatalf("promo lost after failed attempts: %+v", applied)
	}

	if err := m.RemovePromo(ctx, sid); err != nil {
		t.Fatal(err)
	}
	_, applied, _ = m.GetCart(ctx, sid)
	if applied != nil {
		t.Fatalf("promo still applied: %+v", applied)
	}
}

func TestMemoryClearCartDropsPromo(t *testing.T) {
	m := NewMemory()
	sid := "session-a"
	m.AddCartItem(ctx, sid, models.CartItem{ProductID: 1, Price: 59.99, Quantity: 1})
	if _, err := m.ApplyPromo(ctx, sid, "WELCOME10"); err != nil {
		t.Fatal(err)
	}

	if err := m.ClearCart(ctx, sid); err != nil {
		t.Fatal(err)
	}
	items, promo, _ := m.GetCart(ctx, sid)
	if len(items) != 0 || promo != nil {
		t.Fatalf("after clear: %d items, promo %+v", len(items), promo)
	}
}

// ─────────────────────────────────────────────────────────────
// Wishlist
// ─────────────────────────────────────────────────────────────

func TestMemoryToggleWishlist(t *testing.T) {
	m := NewMemory()
	sid := "session-a"

	added, err := m.ToggleWishlist(ctx, sid, 1)
	if err != nil || !added {
		t.Fatalf("first toggle: added=%v err=%v", added, err)
	}
	m.ToggleWishlist(ctx, sid, 3)

	list, err := m.ListWishlist(ctx, sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 3 {
		t.Fatalf("wishlist = %v", list)
	}

	added, err = m.ToggleWishlist(ctx, sid, 1)
	if err != nil || added {
		t.Fatalf("second toggle: added=%v err=%v", added, err)
	}
	list, _ = m.ListWishlist(ctx, sid)
	if len(list) != 1 || list[0].ID != 3 {
		t.Fatalf("wishlist after removal = %v", list)
	}

	if _, err := m.ToggleWishlist(ctx, sid, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown product: err = %v", err)
	}
}

// ─────────────────────────────────────────────────────────────
// Orders
// ─────────────────────────────────────────────────────────────

func placeOrder(t *testing.T, m *Memory, sid, status string, total float64) *models.Order {
	t.Helper()
	num, err := m.NextOrderNumber(ctx)
	if err != nil {
		t.Fatal(err)
	}
	order := &models.Order{SessionID: sid, OrderNumber: num, Status: status, TotalAmount: total}
	items := []models.OrderItem{{ProductID: 1, ProductName: "Floral Summer Dress", Price: total, Quantity: 1, Subtotal: total}}
	if err := m.CreateOrder(ctx, order, items); err != nil {
		t.Fatal(err)
	}
	return order
}

func TestMemoryNextOrderNumber(t *testing.T) {
	m := NewMemory()
	first, err := m.NextOrderNumber(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(first, "SON-") || !strings.HasSuffix(first, "-000001") {
		t.Fatalf("order number = %q", first)
	}
	second, _ := m.NextOrderNumber(ctx)
	if !strings.HasSuffix(second, "-000002") {
		t.Fatalf("second order number = %q", second)
	}
}

func TestMemoryOrders(t *testing.T) {
	m := NewMemory()
	first := placeOrder(t, m, "session-a", models.OrderStatusPending, 64.30)
	placeOrder(t, m, "session-a", models.OrderStatusShipped, 120.00)
	placeOrder(t, m, "session-b", models.OrderStatusPending, 30.00)

	rows, total, err := m.ListOrders(ctx, "session-a", query.DefaultState(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("session-a sees %d/%d orders", len(rows), total)
	}
	if rows[0].ItemCount != 1 {
		t.Fatalf("item count = %d", rows[0].ItemCount)
	}

	// Status facet narrows the history.
	st := query.DefaultState()
	st.SetFacet(models.FacetStatus, models.OrderStatusShipped)
	rows, total, err = m.ListOrders(ctx, "session-a", st, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || rows[0].Status != models.OrderStatusShipped {
		t.Fatalf("shipped filter: %d rows, first %+v", total, rows)
	}

	got, err := m.GetOrder(ctx, "session-a", first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OrderNumber != first.OrderNumber || len(got.Items) != 1 {
		t.Fatalf("order detail = %+v", got)
	}

	// Another session cannot read it.
	if _, err := m.GetOrder(ctx, "session-b", first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-session read: err = %v", err)
	}
}

// ─────────────────────────────────────────────────────────────
// Profile and addresses
// ─────────────────────────────────────────────────────────────

func TestMemoryProfile(t *testing.T) {
	m := NewMemory()

	// A fresh session reads an empty profile, not an error.
	p, err := m.GetProfile(ctx, "session-a")
	if err != nil {
		t.Fatal(err)
	}
	if p.SessionID != "session-a" || p.Email != "" {
		t.Fatalf("fresh profile = %+v", p)
	}

	p.FirstName = "Layla"
	p.Email = "layla@example.com"
	if err := m.SaveProfile(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, _ := m.GetProfile(ctx, "session-a")
	if got.FirstName != "Layla" || got.Email != "layla@example.com" {
		t.Fatalf("saved profile = %+v", got)
	}
}

func TestMemoryAddressDefaults(t *testing.T) {
	m := NewMemory()
	sid := "session-a"

	home := &models.Address{SessionID: sid, Label: "Home", Street: "1 Olive St", City: "Ramallah", Country: "PS"}
	if err := m.AddAddress(ctx, home); err != nil {
		t.Fatal(err)
	}
	if !home.IsDefault {
		t.Fatal("first address must become the default")
	}

	work := &models.Address{SessionID: sid, Label: "Work", Street: "9 Main St", City: "Ramallah", Country: "PS", IsDefault: true}
	if err := m.AddAddress(ctx, work); err != nil {
		t.Fatal(err)
	}
	list, _ := m.ListAddresses(ctx, sid)
	if defaults(list) != 1 {
		t.Fatalf("addresses = %+v", list)
	}
	if !list[1].IsDefault {
		t.Fatal("new default did not displace the old one")
	}

	// Deleting the default promotes the remaining address.
	if err := m.DeleteAddress(ctx, sid, work.ID); err != nil {
		t.Fatal(err)
	}
	list, _ = m.ListAddresses(ctx, sid)
	if len(list) != 1 || !list[0].IsDefault {
		t.Fatalf("after delete = %+v", list)
	}
}

func TestMemorySetDefaultAddress(t *testing.T) {
	m := NewMemory()
	sid := "session-a"
	a := &models.Address{SessionID: sid, Street: "1 Olive St", City: "Ramallah", Country: "PS"}
	b := &models.Address{SessionID: sid, Street: "9 Main St", City: "Ramallah", Country: "PS"}
	m.AddAddress(ctx, a)
	m.AddAddress(ctx, b)

	if err := m.SetDefaultAddress(ctx, sid, b.ID); err != nil {
		t.Fatal(err)
	}
	list, _ := m.ListAddresses(ctx, sid)
	if defaults(list) != 1 || !list[1].IsDefault {
		t.Fatalf("addresses = %+v", list)
	}

	if err := m.SetDefaultAddress(ctx, sid, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing address: err = %v", err)
	}
}

func defaults(list []models.Address) int {
	n := 0
	for _, a := range list {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestMemoryUpdateAddress(t *testing.T) {
	m := NewMemory()
	sid := "session-a"
	a := &models.Address{SessionID: sid, Street: "1 Olive St", City: "Ramallah", Country: "PS"}
	m.AddAddress(ctx, a)

	upd := &models.Address{ID: a.ID, Street: "2 Olive St", City: "Ramallah", Country: "PS"}
	if err := m.UpdateAddress(ctx, sid, upd); err != nil {
		t.Fatal(err)
	}
	list, _ := m.ListAddresses(ctx, sid)
	if list[0].Street != "2 Olive St" {
		t.Fatalf("street = %q", list[0].Street)
	}
	// Updating never silently changes the default flag.
	if !list[0].IsDefault {
		t.Fatal("update dropped the default flag")
	}

	if err := m.UpdateAddress(ctx, "session-b", upd); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-session update: err = %v", err)
	}
}

func TestMemorySaveContactMessage(t *testing.T) {
	m := NewMemory()
	msg := &models.ContactMessage{Name: "Layla", Email: "layla@example.com", Subject: "Sizing", Message: "Does the kaftan run large?"}
	if err := m.SaveContactMessage(ctx, msg); err != nil {
		t.Fatal(err)
	}
	if msg.ID == 0 || msg.CreatedAt.IsZero() {
		t.Fatalf("stored message = %+v", msg)
	}
}
