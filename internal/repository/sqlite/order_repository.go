package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	total_price REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users (id)
);
`

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createOrdersTable); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (int64, error) {
	order.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO orders (user_id, total_price, created_at)
VALUES (?, ?, ?)`,
		order.UserID,
		order.TotalPrice,
		order.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("order last insert id: %w", err)
	}
	order.ID = id
	return id, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// SumTotalPrice returns 0 when the table is empty (SUM over no rows is NULL).
func (r *OrderRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, `SELECT SUM(total_price) FROM orders`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum order totals: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}
