package postgres

import (
	"context"
	"database/sql"

	"med-tracker/internal/domain/orders"
)

type OrdersRepo struct {
	db *sql.DB
}

func NewOrdersRepo(db *sql.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

func (r *OrdersRepo) Create(ctx context.Context, o orders.Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, session_id, ordered_at, item, quantity, cost_per_unit, delivery_cost, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, o.ID, o.SessionID, o.OrderedAt, o.Item, o.Quantity, o.CostPerUnit, o.DeliveryCost, o.TotalCost)
	return err
}

func (r *OrdersRepo) ListBySession(ctx context.Context, sessionID string) ([]orders.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, ordered_at, item, quantity, cost_per_unit, delivery_cost, total_cost
		FROM orders
		WHERE session_id = $1
		ORDER BY ordered_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]orders.Order, 0)
	for rows.Next() {
		var o orders.Order
		if err := rows.Scan(&o.ID, &o.SessionID, &o.OrderedAt, &o.Item, &o.Quantity, &o.CostPerUnit, &o.DeliveryCost, &o.TotalCost); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
