package models

import "testing"

func strPtr(s string) *string { return &s }

func TestSameVariant(t *testing.T) {
	base := CartItem{ProductID: 1, Size: strPtr("M"), Color: strPtr("Black")}

	cases := []struct {
		name  string
		other CartItem
		want  bool
	}{
		{"identical", CartItem{ProductID: 1, Size: strPtr("M"), Color: strPtr("Black")}, true},
		{"different size", CartItem{ProductID: 1, Size: strPtr("L"), Color: strPtr("Black")}, false},
		{"different color", CartItem{ProductID: 1, Size: strPtr("M"), Color: strPtr("Ivory")}, false},
		{"different product", CartItem{ProductID: 2, Size: strPtr("M"), Color: strPtr("Black")}, false},
		{"nil vs set size", CartItem{ProductID: 1, Color: strPtr("Black")}, false},
	}
	for _, tc := range cases {
		if got := base.SameVariant(tc.other); got != tc.want {
			t.Errorf("%s: SameVariant = %v, want %v", tc.name, got, tc.want)
		}
	}

	// Accessory lines without size or color still merge.
	a := CartItem{ProductID: 13}
	b := CartItem{ProductID: 13}
	if !a.SameVariant(b) {
		t.Error("nil size and color on both sides should match")
	}
}

func TestComputeCartTotalsEmptyCart(t *testing.T) {
	got := ComputeCartTotals(nil, nil)
	if got != (CartTotals{}) {
		t.Fatalf("empty cart totals = %+v", got)
	}
}

func TestComputeCartTotalsShipping(t *testing.T) {
	below := []CartItem{{Price: 29.99, Quantity: 2}} // 59.98
	got := ComputeCartTotals(below, nil)
	if got.Shipping != StandardShippingCost {
		t.Errorf("below threshold shipping = %v", got.Shipping)
	}
	if got.Subtotal != 59.98 {
		t.Errorf("subtotal = %v", got.Subtotal)
	}
	if got.Tax != 4.80 { // 59.98 * 0.08 = 4.7984 → 4.80
		t.Errorf("tax = %v", got.Tax)
	}
	if got.Total != 70.77 { // 59.98 + 5.99 + 4.80
		t.Errorf("total = %v", got.Total)
	}

	// Exactly at the threshold ships free.
	at := []CartItem{{Price: 50, Quantity: 2}}
	if got := ComputeCartTotals(at, nil); got.Shipping != 0 {
		t.Errorf("at threshold shipping = %v", got.Shipping)
	}
}

func TestComputeCartTotalsPercentPromo(t *testing.T) {
	items := []CartItem{{Price: 59.99, Quantity: 1}}
	promo := &PromoCode{Code: "WELCOME10", Kind: PromoPercent, Value: 10, Active: true}

	got := ComputeCartTotals(items, promo)
	if got.Discount != 6.00 { // 59.99 * 0.10 = 5.999 → 6.00
		t.Errorf("discount = %v", got.Discount)
	}
	// Tax applies to the discounted subtotal.
	if got.Tax != 4.32 { // (59.99 - 6.00) * 0.08 = 4.3192 → 4.32
		t.Errorf("tax = %v", got.Tax)
	}
	if got.Total != 64.30 { // 53.99 + 5.99 + 4.32
		t.Errorf("total = %v", got.Total)
	}
}

func TestComputeCartTotalsFixedPromoCappedAtSubtotal(t *testing.T) {
	items := []CartItem{{Price: 10, Quantity: 1}}
	promo := &PromoCode{Code: "SAVE15", Kind: PromoFixed, Value: 15, Active: true}

	got := ComputeCartTotals(items, promo)
	if got.Discount != 10 {
		t.Errorf("fixed discount must not exceed the subtotal, got %v", got.Discount)
	}
	if got.Tax != 0 {
		t.Errorf("tax on a zero taxable base = %v", got.Tax)
	}
	if got.Total != StandardShippingCost {
		t.Errorf("total = %v", got.Total)
	}
}

func TestComputeCartTotalsFreeShippingPromo(t *testing.T) {
	items := []CartItem{{Price: 59.99, Quantity: 1}}
	promo := &PromoCode{Code: "FREESHIP", Kind: PromoFreeShipping, MinSubtotal: 50, Active: true}

	got := ComputeCartTotals(items, promo)
	if got.Shipping != 0 {
		t.Errorf("free shipping promo left shipping at %v", got.Shipping)
	}
	if got.Discount != 0 {
		t.Errorf("free shipping promo is not a discount, got %v", got.Discount)
	}
}

func TestComputeCartTotalsPromoBelowMinimumContributesNothing(t *testing.T) {
	items := []CartItem{{Price: 40, Quantity: 1}}
	promo := &PromoCode{Code: "SONAA20", Kind: PromoPercent, Value: 20, MinSubtotal: 100, Active: true}

	got := ComputeCartTotals(items, promo)
	if got.Discount != 0 {
		t.Errorf("below-minimum promo discounted %v", got.Discount)
	}
	if got.Shipping != StandardShippingCost {
		t.Errorf("shipping = %v", got.Shipping)
	}
}

func TestComputeCartTotalsInactivePromoIgnored(t *testing.T) {
	items := []CartItem{{Price: 40, Quantity: 1}}
	promo := &PromoCode{Code: "SPRING5", Kind: PromoFixed, Value: 5, Active: false}

	if got := ComputeCartTotals(items, promo); got.Discount != 0 {
		t.Errorf("inactive promo discounted %v", got.Discount)
	}
}

func TestRoundCents(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{5.999, 6.00},
		{4.7984, 4.80},
		{10.004, 10.00},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundCents(tc.in); got != tc.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
