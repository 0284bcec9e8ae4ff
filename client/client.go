// Package client is a typed consumer of the storefront API. It accepts
// both documented response shapes (the ApiResponse envelope and a bare
// JSON array) and drives query.Paginator for load-more flows.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

// Client talks to one storefront API instance on behalf of one session.
type Client struct {
	baseURL   string
	sessionID string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionID pins the session instead of minting a fresh one.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// New builds a client for baseURL (e.g. "http://localhost:8080/api/v1").
// A fresh session UUID is minted unless WithSessionID overrides it.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		sessionID: uuid.NewString(),
		http:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the session this client shops under.
func (c *Client) SessionID() string {
	return c.sessionID
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// envelope mirrors models.ApiResponse with the data left raw so the
// caller picks the concrete type.
type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) (*models.Pagination, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Session-ID", c.sessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil, nil
	}
	return decodePayload(raw, out)
}

// decodePayload handles both documented response shapes: the envelope
// with a data field, and a bare JSON value.
func decodePayload(raw []byte, out any) (*models.Pagination, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, json.Unmarshal(trimmed, out)
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 {
		// An envelope without data; fall back to decoding the whole
		// body in case the server answered a bare object.
		return env.Meta, json.Unmarshal(trimmed, out)
	}
	return env.Meta, json.Unmarshal(env.Data, out)
}

// ─────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────

// ProductQuery mirrors the list endpoint's query parameters. Zero
// values are omitted from the request.
type ProductQuery struct {
	Search       string
	Category     string
	Size         string
	Color        string
	Availability string
	MinPrice     float64
	MaxPrice     float64
	SortBy       query.SortKey
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Size != "" {
		v.Set("size", q.Size)
	}
	if q.Color != "" {
		v.Set("color", q.Color)
	}
	if q.Availability != "" {
		v.Set("availability", q.Availability)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
	}
	return v
}

// ListProducts fetches one page of the catalog.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery, page, limit int) ([]models.ProductCardResponse, *models.Pagination, error) {
	v := q.values()
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))

	var cards []models.ProductCardResponse
	meta, err := c.do(ctx, http.MethodGet, "/products?"+v.Encode(), nil, &cards)
	if err != nil {
		return nil, nil, err
	}
	return cards, meta, nil
}

// ProductPaginator returns a load-more paginator over the catalog with
// the given filters applied.
func (c *Client) ProductPaginator(q ProductQuery, limit int) *query.Paginator[models.ProductCardResponse] {
	fetch := func(ctx context.Context, page, pageLimit int) ([]models.ProductCardResponse, error) {
		cards, _, err := c.ListProducts(ctx, q, page, pageLimit)
		return cards, err
	}
	id := func(p models.ProductCardResponse) int64 { return p.ID }
	return query.NewPaginator(fetch, id, limit)
}

// GetProduct fetches one product's full detail.
func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if _, err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FilterMetadata fetches the sidebar filter aggregates.
func (c *Client) FilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	var meta models.FilterMetadata
	if _, err := c.do(ctx, http.MethodGet, "/filters/metadata", nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// ─────────────────────────────────────────────────────────────
// Cart
// ─────────────────────────────────────────────────────────────

func (c *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if _, err := c.do(ctx, http.MethodGet, "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, req models.AddCartItemRequest) (*models.Cart, error) {
	var cart models.Cart
	if _, err := c.do(ctx, http.MethodPost, "/cart/items", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*models.Cart, error) {
	var cart models.Cart
	path := "/cart/items/" + strconv.FormatInt(itemID, 10)
	if _, err := c.do(ctx, http.MethodPatch, path, models.UpdateCartItemRequest{Quantity: quantity}, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) (*models.Cart, error) {
	var cart models.Cart
	path := "/cart/items/" + strconv.FormatInt(itemID, 10)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart", nil, nil)
	return err
}

func (c *Client) ApplyPromo(ctx context.Context, code string) (*models.Cart, error) {
	var cart models.Cart
	if _, err := c.do(ctx, http.MethodPost, "/cart/promo", models.ApplyPromoRequest{Code: code}, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemovePromo(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if _, err := c.do(ctx, http.MethodDelete, "/cart/promo", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ─────────────────────────────────────────────────────────────
// Wishlist
// ─────────────────────────────────────────────────────────────

func (c *Client) GetWishlist(ctx context.Context) ([]models.ProductCardResponse, error) {
	var cards []models.ProductCardResponse
	if _, err := c.do(ctx, http.MethodGet, "/wishlist", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) ToggleWishlist(ctx context.Context, productID int64) error {
	_, err := c.do(ctx, http.MethodPost, "/wishlist/"+strconv.FormatInt(productID, 10), nil, nil)
	return err
}

// ─────────────────────────────────────────────────────────────
// Account
// ─────────────────────────────────────────────────────────────

func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if _, err := c.do(ctx, http.MethodGet, "/user/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if _, err := c.do(ctx, http.MethodPatch, "/user/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if _, err := c.do(ctx, http.MethodGet, "/user/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) AddAddress(ctx context.Context, req models.AddressRequest) (*models.Address, error) {
	var address models.Address
	if _, err := c.do(ctx, http.MethodPost, "/user/addresses", req, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderWithItems, error) {
	var order models.OrderWithItems
	if _, err := c.do(ctx, http.MethodPost, "/user/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, page, limit int) ([]models.OrderHistoryRow, *models.Pagination, error) {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))

	var rows []models.OrderHistoryRow
	meta, err := c.do(ctx, http.MethodGet, "/user/orders?"+v.Encode(), nil, &rows)
	if err != nil {
		return nil, nil, err
	}
	return rows, meta, nil
}

// OrderPaginator returns a load-more paginator over order history.
func (c *Client) OrderPaginator(limit int) *query.Paginator[models.OrderHistoryRow] {
	fetch := func(ctx context.Context, page, pageLimit int) ([]models.OrderHistoryRow, error) {
		rows, _, err := c.ListOrders(ctx, page, pageLimit)
		return rows, err
	}
	id := func(o models.OrderHistoryRow) int64 { return o.ID }
	return query.NewPaginator(fetch, id, limit)
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.OrderWithItems, error) {
	var order models.OrderWithItems
	if _, err := c.do(ctx, http.MethodGet, "/user/orders/"+strconv.FormatInt(id, 10), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/contact", req, nil)
	return err
}
