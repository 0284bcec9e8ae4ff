package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
)

func testCards(n int) []models.ProductCardResponse {
	cards := make([]models.ProductCardResponse, n)
	for i := range cards {
		cards[i] = models.ProductCardResponse{
			ID:    int64(i + 1),
			Name:  "Product " + strconv.Itoa(i+1),
			Price: float64(10 + i),
		}
	}
	return cards
}

// newTestServer serves a paged catalog in the envelope shape and the
// address list as a bare array, mirroring both documented responses.
func newTestServer(t *testing.T, catalog []models.ProductCardResponse) (*httptest.Server, *string) {
	t.Helper()
	var lastSession string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		lastSession = r.Header.Get("X-Session-ID")

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 12
		}

		start := (page - 1) * limit
		if start > len(catalog) {
			start = len(catalog)
		}
		end := start + limit
		if end > len(catalog) {
			end = len(catalog)
		}
		totalPages := (len(catalog) + limit - 1) / limit

		json.NewEncoder(w).Encode(models.ApiResponse{
			Success: true,
			Message: "Products fetched successfully",
			Data:    catalog[start:end],
			Meta: &models.Pagination{
				Page:       page,
				Limit:      limit,
				Total:      len(catalog),
				TotalPages: totalPages,
				HasMore:    page < totalPages,
			},
		})
	})
	mux.HandleFunc("/api/v1/products/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ApiResponse{Message: "Product not found", Error: true})
	})
	mux.HandleFunc("/api/v1/user/addresses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Address{
			{ID: 1, Label: "Home", IsDefault: true},
			{ID: 2, Label: "Work"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastSession
}

func TestListProducts(t *testing.T) {
	srv, lastSession := newTestServer(t, testCards(25))
	c := New(srv.URL+"/api/v1", WithSessionID("9f1c0c2e-5b7a-4d8f-9e35-2f0a6d1c7b44"))

	cards, meta, err := c.ListProducts(context.Background(), ProductQuery{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 10 || cards[0].ID != 1 {
		t.Fatalf("page 1 = %d cards, first %+v", len(cards), cards[0])
	}
	if meta == nil || meta.Total != 25 || !meta.HasMore {
		t.Fatalf("meta = %+v", meta)
	}
	if *lastSession != c.SessionID() {
		t.Fatalf("session header = %q", *lastSession)
	}
}

func TestProductPaginatorLoadsAllPages(t *testing.T) {
	srv, _ := newTestServer(t, testCards(25))
	c := New(srv.URL + "/api/v1")

	p := c.ProductPaginator(ProductQuery{}, 10)
	ctx := context.Background()

	for p.HasMore() {
		if _, err := p.LoadNextPage(ctx); err != nil {
			t.Fatal(err)
		}
	}

	items := p.Items()
	if len(items) != 25 {
		t.Fatalf("accumulated %d cards", len(items))
	}
	seen := make(map[int64]bool)
	for _, card := range items {
		if seen[card.ID] {
			t.Fatalf("card %d appears twice", card.ID)
		}
		seen[card.ID] = true
	}
	if p.Page() != 3 {
		t.Fatalf("loaded %d pages", p.Page())
	}
}

func TestGetProductNotFound(t *testing.T) {
	srv, _ := newTestServer(t, testCards(5))
	c := New(srv.URL + "/api/v1")

	_, err := c.GetProduct(context.Background(), 999)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Product not found" {
		t.Fatalf("api error = %+v", apiErr)
	}
}

func TestListAddressesDecodesBareArray(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	c := New(srv.URL + "/api/v1")

	addresses, err := c.ListAddresses(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(addresses) != 2 || addresses[0].Label != "Home" || !addresses[0].IsDefault {
		t.Fatalf("addresses = %+v", addresses)
	}
}

func TestNewMintsSessionID(t *testing.T) {
	a := New("http://localhost:8080/api/v1")
	b := New("http://localhost:8080/api/v1")
	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Fatalf("sessions %q and %q", a.SessionID(), b.SessionID())
	}
}
