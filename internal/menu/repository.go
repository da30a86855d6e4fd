package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id string) error
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, activeOnly bool) ([]Item, error) {
	query := `SELECT id, name, price_cents, category, active FROM menu_items`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select menu_items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.PriceCents, &it.Category, &it.Active); err != nil {
			return nil, fmt.Errorf("scan menu_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return items, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*Item, error) {
	var it Item
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price_cents, category, active FROM menu_items WHERE id = $1`,
		id,
	).Scan(&it.ID, &it.Name, &it.PriceCents, &it.Category, &it.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// caller (handler) can turn this into 404
			return nil, nil
		}
		return nil, fmt.Errorf("select menu_item: %w", err)
	}
	return &it, nil
}

func (r *repo) Create(ctx context.Context, it *Item) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_items (id, name, price_cents, category, active)
         VALUES ($1, $2, $3, $4, $5)`,
		it.ID, it.Name, it.PriceCents, it.Category, it.Active,
	)
	if err != nil {
		return fmt.Errorf("insert menu_item: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, it *Item) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET name = $2, price_cents = $3, category = $4, active = $5
         WHERE id = $1`,
		it.ID, it.Name, it.PriceCents, it.Category, it.Active,
	)
	if err != nil {
		return fmt.Errorf("update menu_item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu_item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
