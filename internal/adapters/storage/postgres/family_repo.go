package postgres

import (
	"context"
	"database/sql"

	"med-tracker/internal/domain/family"
)

type FamilyRepo struct {
	db *sql.DB
}

func NewFamilyRepo(db *sql.DB) *FamilyRepo {
	return &FamilyRepo{db: db}
}

// La columna position materializa la identidad posicional de la lista:
// borrar un miembro renumera los siguientes dentro de la misma tx.
func (r *FamilyRepo) Append(ctx context.Context, m family.Member) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO family_members (id, session_id, name, age, relationship, position, created_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM family_members WHERE session_id = $2),
			$6)
	`, m.ID, m.SessionID, m.Name, m.Age, m.Relationship, m.CreatedAt)
	return err
}

func (r *FamilyRepo) ListBySession(ctx context.Context, sessionID string) ([]family.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, name, age, relationship, created_at
		FROM family_members
		WHERE session_id = $1
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]family.Member, 0)
	for rows.Next() {
		var m family.Member
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Name, &m.Age, &m.Relationship, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *FamilyRepo) RemoveAt(ctx context.Context, sessionID string, index int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM family_members
		WHERE session_id = $1 AND position = $2
	`, sessionID, index)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE family_members
		SET position = position - 1
		WHERE session_id = $1 AND position > $2
	`, sessionID, index)
	if err != nil {
		return err
	}

	return tx.Commit()
}
