package cart_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/middleware"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

const testSession = "9f1c0c2e-5b7a-4d8f-9e35-2f0a6d1c7b44"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(store.NewMemory())
	r := gin.New()
	cart := r.Group("/api/v1/cart")
	cart.Use(middleware.Session())
	{
		cart.GET("", GetCart)
		cart.DELETE("", ClearCart)
		cart.POST("/items", AddCartItem)
		cart.PATCH("/items/:itemId", UpdateCartItem)
		cart.DELETE("/items/:itemId", RemoveCartItem)
		cart.POST("/promo", ApplyPromo)
		cart.DELETE("/promo", RemovePromo)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, payload any) (int, models.Cart) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", testSession)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Data models.Cart `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env.Data
}

func addItem(t *testing.T, r *gin.Engine, req models.AddCartItemRequest) (int, models.Cart) {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/v1/cart/items", req)
}

func sizePtr(s string) *string { return &s }

func TestCartRequiresSession(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/cart", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing session header status = %d", w.Code)
	}
}

func TestAddCartItem(t *testing.T) {
	r := newRouter()

	code, cart := addItem(t, r, models.AddCartItemRequest{ProductID: 1, Quantity: 1, Size: sizePtr("M")})
	if code != http.StatusCreated {
		t.Fatalf("status = %d", code)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d lines", len(cart.Items))
	}
	line := cart.Items[0]
	// Name, image and price come from the catalog, not the client.
	if line.Name != "Floral Summer Dress" || line.Price != 59.99 {
		t.Fatalf("line = %+v", line)
	}
	if cart.Totals.Subtotal != 59.99 || cart.Totals.Shipping != models.StandardShippingCost {
		t.Fatalf("totals = %+v", cart.Totals)
	}

	// Same variant merges instead of adding a second line.
	code, cart = addItem(t, r, models.AddCartItemRequest{ProductID: 1, Quantity: 2, Size: sizePtr("M")})
	if code != http.StatusCreated {
		t.Fatalf("merge status = %d", code)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("after merge: %+v", cart.Items)
	}
}

func TestAddCartItemRejections(t *testing.T) {
	r := newRouter()

	// Product 5 (Linen Shirt Dress) is out of stock.
	code, _ := addItem(t, r, models.AddCartItemRequest{ProductID: 5, Quantity: 1})
	if code != http.StatusConflict {
		t.Errorf("out-of-stock status = %d", code)
	}

	code, _ = addItem(t, r, models.AddCartItemRequest{ProductID: 1, Quantity: 1, Size: sizePtr("XXL")})
	if code != http.StatusBadRequest {
		t.Errorf("unknown size status = %d", code)
	}

	code, _ = addItem(t, r, models.AddCartItemRequest{ProductID: 999, Quantity: 1})
	if code != http.StatusNotFound {
		t.Errorf("unknown product status = %d", code)
	}

	code, _ = addItem(t, r, models.AddCartItemRequest{ProductID: 1, Quantity: 0})
	if code != http.StatusBadRequest {
		t.Errorf("zero quantity status = %d", code)
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	r := newRouter()
	_, cart := addItem(t, r, models.AddCartItemRequest{ProductID: 3, Quantity: 2})
	itemID := strconv.FormatInt(cart.Items[0].ID, 10)

	code, cart := doJSON(t, r, http.MethodPatch, "/api/v1/cart/items/"+itemID, models.UpdateCartItemRequest{Quantity: 5})
	if code != http.StatusOK || cart.Items[0].Quantity != 5 {
		t.Fatalf("update: status=%d items=%+v", code, cart.Items)
	}

	// Quantity zero removes the line.
	code, cart = doJSON(t, r, http.MethodPatch, "/api/v1/cart/items/"+itemID, models.UpdateCartItemRequest{Quantity: 0})
	if code != http.StatusOK || len(cart.Items) != 0 {
		t.Fatalf("zero quantity: status=%d items=%+v", code, cart.Items)
	}

	code, _ = doJSON(t, r, http.MethodDelete, "/api/v1/cart/items/999", nil)
	if code != http.StatusNotFound {
		t.Fatalf("remove missing item status = %d", code)
	}
}

func TestPromoFlow(t *testing.T) {
	r := newRouter()
	addItem(t, r, models.AddCartItemRequest{ProductID: 1, Quantity: 1}) // 59.99

	code, _ := doJSON(t, r, http.MethodPost, "/api/v1/cart/promo", models.ApplyPromoRequest{Code: "BOGUSCODE"})
	if code != http.StatusUnprocessableEntity {
		t.Errorf("unknown promo status = %d", code)
	}
	// SONAA20 requires a 100.00 subtotal.
	code, _ = doJSON(t, r, http.MethodPost, "/api/v1/cart/promo", models.ApplyPromoRequest{Code: "SONAA20"})
	if code != http.StatusUnprocessableEntity {
		t.Errorf("below-minimum promo status = %d", code)
	}

	code, cart := doJSON(t, r, http.MethodPost, "/api/v1/cart/promo", models.ApplyPromoRequest{Code: "WELCOME10"})
	if code != http.StatusOK {
		t.Fatalf("apply promo status = %d", code)
	}
	if cart.Promo == nil || cart.Promo.Code != "WELCOME10" {
		t.Fatalf("promo = %+v", cart.Promo)
	}
	if cart.Totals.Discount != 6.00 {
		t.Fatalf("discount = %v", cart.Totals.Discount)
	}

	code, cart = doJSON(t, r, http.MethodDelete, "/api/v1/cart/promo", nil)
	if code != http.StatusOK || cart.Promo != nil {
		t.Fatalf("remove promo: status=%d promo=%+v", code, cart.Promo)
	}
}

func TestClearCart(t *testing.T) {
	r := newRouter()
	addItem(t, r, models.AddCartItemRequest{ProductID: 1, Quantity: 1})
	doJSON(t, r, http.MethodPost, "/api/v1/cart/promo", models.ApplyPromoRequest{Code: "WELCOME10"})

	code, cart := doJSON(t, r, http.MethodDelete, "/api/v1/cart", nil)
	if code != http.StatusOK {
		t.Fatalf("clear status = %d", code)
	}
	if len(cart.Items) != 0 || cart.Promo != nil {
		t.Fatalf("after clear: %+v", cart)
	}
	if cart.Totals != (models.CartTotals{}) {
		t.Fatalf("cleared totals = %+v", cart.Totals)
	}
}
