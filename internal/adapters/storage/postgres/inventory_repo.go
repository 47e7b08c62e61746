package postgres

import (
	"context"
	"database/sql"

	"med-tracker/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (id, session_id, name, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, it.ID, it.SessionID, it.Name, it.Quantity, it.CreatedAt)
	return err
}

func (r *InventoryRepo) ListBySession(ctx context.Context, sessionID string) ([]inventory.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, name, quantity, created_at
		FROM inventory_items
		WHERE session_id = $1
		ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.Item, 0)
	for rows.Next() {
		var it inventory.Item
		if err := rows.Scan(&it.ID, &it.SessionID, &it.Name, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
