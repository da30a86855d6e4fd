package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	ListRecent(ctx context.Context, limit int) ([]Order, error)
	Summarize(ctx context.Context, since time.Time) (*Summary, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, created_at, subtotal_cents, tax_cents, total_cents, tender_type)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.CreatedAt, o.SubtotalCents, o.TaxCents, o.TotalCents, string(o.TenderType),
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, item_id, name, unit_price_cents, quantity, notes)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID, it.ItemID, it.Name, it.UnitPriceCents, it.Quantity, it.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	var tender string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, subtotal_cents, tax_cents, total_cents, tender_type
         FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.CreatedAt, &o.SubtotalCents, &o.TaxCents, &o.TotalCents, &tender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	o.TenderType = Tender(tender)

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, subtotal_cents, tax_cents, total_cents, tender_type
         FROM orders ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		var tender string
		if err := rows.Scan(&o.ID, &o.CreatedAt, &o.SubtotalCents, &o.TaxCents, &o.TotalCents, &tender); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.TenderType = Tender(tender)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *repo) Summarize(ctx context.Context, since time.Time) (*Summary, error) {
	s := Summary{Since: since, TenderCounts: make(map[string]int64)}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_cents), 0), COALESCE(SUM(tax_cents), 0)
         FROM orders WHERE created_at >= $1`,
		since,
	).Scan(&s.OrderCount, &s.GrossCents, &s.TaxCents)
	if err != nil {
		return nil, fmt.Errorf("summarize orders: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT tender_type, COUNT(*) FROM orders WHERE created_at >= $1 GROUP BY tender_type`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("summarize tenders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tender string
		var count int64
		if err := rows.Scan(&tender, &count); err != nil {
			return nil, fmt.Errorf("scan tender count: %w", err)
		}
		s.TenderCounts[tender] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &s, nil
}

func (r *repo) loadItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, name, unit_price_cents, quantity, notes
         FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order_items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ItemID, &it.Name, &it.UnitPriceCents, &it.Quantity, &it.Notes); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return items, nil
}
