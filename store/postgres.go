package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

// Postgres is the durable backend. CRUD paths go through GORM raw SQL;
// the filter-metadata aggregates run on the pgx pool.
type Postgres struct {
	gorm *gorm.DB
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// NewPostgres wires the backend to the shared config handles. Call
// config.InitDB first.
func NewPostgres() *Postgres {
	return &Postgres{gorm: config.StoreGorm, pool: config.StoreDB}
}

func (p *Postgres) Close() {
	config.CloseDB()
}

// ─────────────────────────────────────────────────────────────
// Products
// ─────────────────────────────────────────────────────────────

// sortClause maps a sort key onto ORDER BY. Every branch ends with the
// id tiebreak so paging stays stable across requests.
func sortClause(key query.SortKey) string {
	switch key {
	case query.SortNewest:
		return "date_added DESC, id ASC"
	case query.SortPriceLow:
		return "price ASC, id ASC"
	case query.SortPriceHigh:
		return "price DESC, id ASC"
	case query.SortRating:
		return "rating DESC, id ASC"
	case query.SortBestseller:
		return "bestseller DESC, id ASC"
	case query.SortName:
		return "LOWER(name) ASC, id ASC"
	case query.SortFeatured:
		return "featured DESC, id ASC"
	default:
		return "id ASC"
	}
}

func (p *Postgres) ListProducts(ctx context.Context, state query.State, page, limit int) ([]models.Product, int, error) {
	st := state.Normalized()

	conditions := []string{"status = ?"}
	args := []interface{}{models.ProductStatusActive}

	if st.Search != "" {
		conditions = append(conditions, "(name ILIKE ? OR description ILIKE ?)")
		pattern := "%" + st.Search + "%"
		args = append(args, pattern, pattern)
	}

	if v := st.Facet(models.FacetCategory); v != query.FacetAll {
		conditions = append(conditions, "LOWER(category) = LOWER(?)")
		args = append(args, v)
	}
	if v := st.Facet(models.FacetSize); v != query.FacetAll {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM jsonb_array_elements_text(sizes) s WHERE LOWER(s) = LOWER(?))")
		args = append(args, v)
	}
	if v := st.Facet(models.FacetColor); v != query.FacetAll {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM jsonb_array_elements_text(colors) col WHERE LOWER(col) = LOWER(?))")
		args = append(args, v)
	}
	if v := st.Facet(models.FacetAvailability); v != query.FacetAll {
		conditions = append(conditions, "in_stock = ?")
		args = append(args, strings.EqualFold(v, "in_stock"))
	}

	conditions = append(conditions, "price >= ?", "price <= ?")
	args = append(args, st.PriceMin, st.PriceMax)

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM products WHERE " + where
	if err := p.gorm.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	listQuery := fmt.Sprintf(
		"SELECT * FROM products WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		where, sortClause(st.Sort),
	)
	args = append(args, limit, (page-1)*limit)

	var products []models.Product
	if err := p.gorm.WithContext(ctx).Raw(listQuery, args...).Scan(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, int(total), nil
}

func (p *Postgres) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := p.gorm.WithContext(ctx).
		Raw("SELECT * FROM products WHERE id = ? AND status = ?", id, models.ProductStatusActive).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (p *Postgres) IncrementViews(ctx context.Context, id int64) error {
	result := p.gorm.WithContext(ctx).
		Exec("UPDATE products SET views = views + 1 WHERE id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FilterMetadata fans the aggregate queries out on the pgx pool and
// joins the results.
func (p *Postgres) FilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	meta := &models.FilterMetadata{
		Availability: &models.AvailabilityData{},
		PriceRange:   &models.PriceRangeData{},
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 4)

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := p.pool.QueryRow(ctx,
			`SELECT COUNT(*) FILTER (WHERE in_stock), COUNT(*) FILTER (WHERE NOT in_stock),
			        COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
			 FROM products WHERE status = $1`, models.ProductStatusActive).
			Scan(&meta.Availability.InStock, &meta.Availability.OutOfStock,
				&meta.PriceRange.Min, &meta.PriceRange.Max)
		if err != nil {
			errCh <- fmt.Errorf("availability aggregate: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		opts, err := p.groupedOptions(ctx,
			`SELECT category, COUNT(*) FROM products WHERE status = $1 GROUP BY category ORDER BY category`)
		if err != nil {
			errCh <- fmt.Errorf("category aggregate: %w", err)
			return
		}
		meta.Categories = opts
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		opts, err := p.groupedOptions(ctx,
			`SELECT s, COUNT(*) FROM products, jsonb_array_elements_text(sizes) s
			 WHERE status = $1 GROUP BY s ORDER BY s`)
		if err != nil {
			errCh <- fmt.Errorf("size aggregate: %w", err)
			return
		}
		meta.Sizes = opts
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		opts, err := p.groupedOptions(ctx,
			`SELECT col, COUNT(*) FROM products, jsonb_array_elements_text(colors) col
			 WHERE status = $1 GROUP BY col ORDER BY col`)
		if err != nil {
			errCh <- fmt.Errorf("color aggregate: %w", err)
			return
		}
		meta.Colors = opts
	}()

	wg.Wait()
	close(errCh)
	for err := range errCh {
		return nil, err
	}
	return meta, nil
}

func (p *Postgres) groupedOptions(ctx context.Context, sql string) ([]models.FilterOption, error) {
	rows, err := p.pool.Query(ctx, sql, models.ProductStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.FilterOption
	for rows.Next() {
		var opt models.FilterOption
		if err := rows.Scan(&opt.Value, &opt.Count); err != nil {
			return nil, err
		}
		opt.Label = titleCase(opt.Value)
		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

// ─────────────────────────────────────────────────────────────
// Cart
// ─────────────────────────────────────────────────────────────

func (p *Postgres) GetCart(ctx context.Context, sessionID string) ([]models.CartItem, *models.PromoCode, error) {
	var items []models.CartItem
	err := p.gorm.WithContext(ctx).
		Raw("SELECT * FROM cart_items WHERE session_id = ? ORDER BY id", sessionID).
		Scan(&items).Error
	if err != nil {
		return nil, nil, fmt.Errorf("get cart: %w", err)
	}

	var promo models.PromoCode
	err = p.gorm.WithContext(ctx).
		Raw(`SELECT pc.* FROM promo_codes pc
		     JOIN cart_promos cp ON cp.code = pc.code
		     WHERE cp.session_id = ?`, sessionID).
		First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return items, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get cart promo: %w", err)
	}
	return items, &promo, nil
}

func (p *Postgres) AddCartItem(ctx context.Context, sessionID string, item models.CartItem) (models.CartItem, error) {
	item.SessionID = sessionID

	var existing models.CartItem
	err := p.gorm.WithContext(ctx).
		Raw(`SELECT * FROM cart_items
		     WHERE session_id = ? AND product_id = ?
		       AND size IS NOT DISTINCT FROM ? AND color IS NOT DISTINCT FROM ?`,
			sessionID, item.ProductID, item.Size, item.Color).
		First(&existing).Error
	if err == nil {
		existing.Quantity += item.Quantity
		updateErr := p.gorm.WithContext(ctx).
			Exec("UPDATE cart_items SET quantity = ? WHERE id = ?", existing.Quantity, existing.ID).Error
		if updateErr != nil {
			return models.CartItem{}, fmt.Errorf("merge cart item: %w", updateErr)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, fmt.Errorf("lookup cart item: %w", err)
	}

	err = p.gorm.WithContext(ctx).
		Raw(`INSERT INTO cart_items (session_id, product_id, name, image, size, color, price, quantity)
		     VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			sessionID, item.ProductID, item.Name, item.Image, item.Size, item.Color, item.Price, item.Quantity).
		Scan(&item.ID).Error
	if err != nil {
		return models.CartItem{}, fmt.Errorf("add cart item: %w", err)
	}
	return item, nil
}

func (p *Postgres) UpdateCartItem(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	if quantity <= 0 {
		return p.RemoveCartItem(ctx, sessionID, itemID)
	}
	result := p.gorm.WithContext(ctx).
		Exec("UPDATE cart_items SET quantity = ? WHERE id = ? AND session_id = ?", quantity, itemID, sessionID)
	if result.Error != nil {
		return fmt.Errorf("update cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) RemoveCartItem(ctx context.Context, sessionID string, itemID int64) error {
	result := p.gorm.WithContext(ctx).
		Exec("DELETE FROM cart_items WHERE id = ? AND session_id = ?", itemID, sessionID)
	if result.Error != nil {
		return fmt.Errorf("remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ClearCart(ctx context.Context, sessionID string) error {
	err := p.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM cart_items WHERE session_id = ?", sessionID).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM cart_promos WHERE session_id = ?", sessionID).Error
	})
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (p *Postgres) ApplyPromo(ctx context.Context, sessionID, code string) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var promo models.PromoCode
	err := p.gorm.WithContext(ctx).
		Raw("SELECT * FROM promo_codes WHERE code = ? AND active", code).
		First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPromoInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("lookup promo: %w", err)
	}

	var subtotal float64
	err = p.gorm.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(price * quantity), 0) FROM cart_items WHERE session_id = ?", sessionID).
		Scan(&subtotal).Error
	if err != nil {
		return nil, fmt.Errorf("cart subtotal: %w", err)
	}
	if subtotal < promo.MinSubtotal {
		return nil, ErrPromoMinimum
	}

	err = p.gorm.WithContext(ctx).
		Exec(`INSERT INTO cart_promos (session_id, code) VALUES (?, ?)
		      ON CONFLICT (session_id) DO UPDATE SET code = EXCLUDED.code`, sessionID, promo.Code).Error
	if err != nil {
		return nil, fmt.Errorf("apply promo: %w", err)
	}
	return &promo, nil
}

func (p *Postgres) RemovePromo(ctx context.Context, sessionID string) error {
	err := p.gorm.WithContext(ctx).
		Exec("DELETE FROM cart_promos WHERE session_id = ?", sessionID).Error
	if err != nil {
		return fmt.Errorf("remove promo: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Wishlist
// ─────────────────────────────────────────────────────────────

func (p *Postgres) ListWishlist(ctx context.Context, sessionID string) ([]models.Product, error) {
	var products []models.Product
	err := p.gorm.WithContext(ctx).
		Raw(`SELECT p.* FROM products p
		     JOIN wishlist_items w ON w.product_id = p.id
		     WHERE w.session_id = ? AND p.status = ?
		     ORDER BY w.created_at`, sessionID, models.ProductStatusActive).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return products, nil
}

func (p *Postgres) ToggleWishlist(ctx context.Context, sessionID string, productID int64) (bool, error) {
	if _, err := p.GetProduct(ctx, productID); err != nil {
		return false, err
	}

	result := p.gorm.WithContext(ctx).
		Exec("DELETE FROM wishlist_items WHERE session_id = ? AND product_id = ?", sessionID, productID)
	if result.Error != nil {
		return false, fmt.Errorf("toggle wishlist: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	err := p.gorm.WithContext(ctx).
		Exec("INSERT INTO wishlist_items (session_id, product_id) VALUES (?, ?)", sessionID, productID).Error
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}
	return true, nil
}

// ─────────────────────────────────────────────────────────────
// Orders
// ─────────────────────────────────────────────────────────────

func (p *Postgres) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	err := p.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insertErr := tx.Raw(`INSERT INTO orders
			(session_id, order_number, subtotal, discount, shipping_cost, tax, total_amount,
			 status, promo_code, device_type, browser, os, ip_address, address_snapshot, customer_notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			order.SessionID, order.OrderNumber, order.Subtotal, order.Discount,
			order.ShippingCost, order.Tax, order.TotalAmount, order.Status,
			order.PromoCode, order.DeviceType, order.Browser, order.OS, order.IPAddress,
			order.AddressSnapshot, order.CustomerNotes).
			Scan(&order.ID).Error
		if insertErr != nil {
			return insertErr
		}

		for i := range items {
			items[i].OrderID = order.ID
			itemErr := tx.Raw(`INSERT INTO order_items
				(order_id, product_id, product_name, image, size, color, price, quantity, subtotal)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
				order.ID, items[i].ProductID, items[i].ProductName, items[i].Image,
				items[i].Size, items[i].Color, items[i].Price, items[i].Quantity, items[i].Subtotal).
				Scan(&items[i].ID).Error
			if itemErr != nil {
				return itemErr
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (p *Postgres) ListOrders(ctx context.Context, sessionID string, state query.State, page, limit int) ([]models.OrderHistoryRow, int, error) {
	st := state.Normalized()

	conditions := []string{"o.session_id = ?"}
	args := []interface{}{sessionID}

	if st.Search != "" {
		conditions = append(conditions, "o.order_number ILIKE ?")
		args = append(args, "%"+st.Search+"%")
	}
	if v := st.Facet(models.FacetStatus); v != query.FacetAll {
		conditions = append(conditions, "o.status = ?")
		args = append(args, strings.ToLower(v))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM orders o WHERE " + where
	if err := p.gorm.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	orderBy := "o.created_at DESC, o.id DESC"
	switch st.Sort {
	case query.SortPriceLow:
		orderBy = "o.total_amount ASC, o.id ASC"
	case query.SortPriceHigh:
		orderBy = "o.total_amount DESC, o.id ASC"
	case query.SortName:
		orderBy = "o.order_number ASC"
	}

	listQuery := fmt.Sprintf(`
		SELECT o.id, o.order_number, o.status, o.total_amount,
		       COUNT(oi.id) AS item_count, o.created_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE %s
		GROUP BY o.id
		ORDER BY %s
		LIMIT ? OFFSET ?`, where, orderBy)
	args = append(args, limit, (page-1)*limit)

	var rows []models.OrderHistoryRow
	if err := p.gorm.WithContext(ctx).Raw(listQuery, args...).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return rows, int(total), nil
}

func (p *Postgres) GetOrder(ctx context.Context, sessionID string, orderID int64) (*models.OrderWithItems, error) {
	var order models.Order
	err := p.gorm.WithContext(ctx).
		Raw("SELECT * FROM orders WHERE id = ? AND session_id = ?", orderID, sessionID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var items []models.OrderItem
	err = p.gorm.WithContext(ctx).
		Raw("SELECT * FROM order_items WHERE order_id = ? ORDER BY id", orderID).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	return &models.OrderWithItems{Order: order, Items: items}, nil
}

func (p *Postgres) NextOrderNumber(ctx context.Context) (string, error) {
	var seq int64
	err := p.gorm.WithContext(ctx).
		Raw("SELECT nextval('order_number_seq')").
		Scan(&seq).Error
	if err != nil {
		return "", fmt.Errorf("next order number: %w", err)
	}
	var year int
	if err := p.gorm.WithContext(ctx).Raw("SELECT EXTRACT(YEAR FROM NOW())::int").Scan(&year).Error; err != nil {
		return "", fmt.Errorf("next order number: %w", err)
	}
	return fmt.Sprintf("SON-%d-%06d", year, seq), nil
}

// ─────────────────────────────────────────────────────────────
// Profile, addresses, contact
// ─────────────────────────────────────────────────────────────

func (p *Postgres) GetProfile(ctx context.Context, sessionID string) (*models.Profile, error) {
	var profile models.Profile
	err := p.gorm.WithContext(ctx).
		Raw("SELECT * FROM profiles WHERE session_id = ?", sessionID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Profile{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (p *Postgres) SaveProfile(ctx context.Context, profile *models.Profile) error {
	err := p.gorm.WithContext(ctx).
		Exec(`INSERT INTO profiles (session_id, first_name, last_name, email, phone, avatar_url, newsletter, updated_at)
		      VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
		      ON CONFLICT (session_id) DO UPDATE SET
		        first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
		        email = EXCLUDED.email, phone = EXCLUDED.phone,
		        avatar_url = EXCLUDED.avatar_url, newsletter = EXCLUDED.newsletter,
		        updated_at = NOW()`,
			profile.SessionID, profile.FirstName, profile.LastName,
			profile.Email, profile.Phone, profile.AvatarURL, profile.Newsletter).Error
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (p *Postgres) ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error) {
	var addresses []models.Address
	err := p.gorm.WithContext(ctx).
		Raw("SELECT * FROM addresses WHERE session_id = ? ORDER BY is_default DESC, id", sessionID).
		Scan(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

func (p *Postgres) AddAddress(ctx context.Context, address *models.Address) error {
	err := p.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw("SELECT COUNT(*) FROM addresses WHERE session_id = ?", address.SessionID).Scan(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			address.IsDefault = true
		} else if address.IsDefault {
			if err := tx.Exec("UPDATE addresses SET is_default = false WHERE session_id = ?", address.SessionID).Error; err != nil {
				return err
			}
		}
		return tx.Raw(`INSERT INTO addresses
			(session_id, label, first_name, last_name, street, city, state, zip, country, phone, is_default)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			address.SessionID, address.Label, address.FirstName, address.LastName,
			address.Street, address.City, address.State, address.Zip,
			address.Country, address.Phone, address.IsDefault).
			Scan(&address.ID).Error
	})
	if err != nil {
		return fmt.Errorf("add address: %w", err)
	}
	return nil
}

func (p *Postgres) UpdateAddress(ctx context.Context, sessionID string, address *models.Address) error {
	result := p.gorm.WithContext(ctx).
		Exec(`UPDATE addresses SET label = ?, first_name = ?, last_name = ?, street = ?,
		      city = ?, state = ?, zip = ?, country = ?, phone = ?, updated_at = NOW()
		      WHERE id = ? AND session_id = ?`,
			address.Label, address.FirstName, address.LastName, address.Street,
			address.City, address.State, address.Zip, address.Country, address.Phone,
			address.ID, sessionID)
	if result.Error != nil {
		return fmt.Errorf("update address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteAddress(ctx context.Context, sessionID string, addressID int64) error {
	err := p.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wasDefault bool
		lookupErr := tx.Raw("SELECT is_default FROM addresses WHERE id = ? AND session_id = ?", addressID, sessionID).
			Scan(&wasDefault).Error
		if lookupErr != nil {
			return lookupErr
		}

		result := tx.Exec("DELETE FROM addresses WHERE id = ? AND session_id = ?", addressID, sessionID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if wasDefault {
			return tx.Exec(`UPDATE addresses SET is_default = true
				WHERE id = (SELECT id FROM addresses WHERE session_id = ? ORDER BY id LIMIT 1)`, sessionID).Error
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func (p *Postgres) SetDefaultAddress(ctx context.Context, sessionID string, addressID int64) error {
	err := p.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec("UPDATE addresses SET is_default = true WHERE id = ? AND session_id = ?", addressID, sessionID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Exec("UPDATE addresses SET is_default = false WHERE session_id = ? AND id <> ?", sessionID, addressID).Error
	})
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	return nil
}

func (p *Postgres) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	err := p.gorm.WithContext(ctx).
		Raw(`INSERT INTO contact_messages (name, email, subject, message)
		     VALUES (?, ?, ?, ?) RETURNING id`,
			msg.Name, msg.Email, msg.Subject, msg.Message).
		Scan(&msg.ID).Error
	if err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	return nil
}

// SeedProducts loads the catalog fixtures, skipping rows that already
// exist. The seed command calls this after migrations.
func (p *Postgres) SeedProducts(ctx context.Context) error {
	for _, product := range Fixtures() {
		err := p.gorm.WithContext(ctx).
			Exec(`INSERT INTO products
				(id, name, description, price, category, sizes, colors, image, rating,
				 review_count, featured, bestseller, in_stock, status, views, date_added)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO NOTHING`,
				product.ID, product.Name, product.Description, product.Price,
				product.Category, product.Sizes, product.Colors, product.Image,
				product.Rating, product.ReviewCount, product.Featured, product.Bestseller,
				product.InStock, product.Status, product.Views, product.DateAdded).Error
		if err != nil {
			return fmt.Errorf("seed product %d: %w", product.ID, err)
		}
	}

	for _, promo := range PromoFixtures() {
		err := p.gorm.WithContext(ctx).
			Exec(`INSERT INTO promo_codes (code, kind, value, min_subtotal, active)
			      VALUES (?, ?, ?, ?, ?) ON CONFLICT (code) DO NOTHING`,
				promo.Code, promo.Kind, promo.Value, promo.MinSubtotal, promo.Active).Error
		if err != nil {
			return fmt.Errorf("seed promo %s: %w", promo.Code, err)
		}
	}

	err := p.gorm.WithContext(ctx).
		Exec("SELECT setval('products_id_seq', (SELECT MAX(id) FROM products))").Error
	if err != nil {
		log.Printf("⚠️ could not advance products sequence: %v", err)
	}
	return nil
}
