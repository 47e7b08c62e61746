package postgres

import (
	"context"
	"database/sql"

	"med-tracker/internal/domain/reminders"
)

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

// Las horas de reloj se guardan como minutos desde medianoche (int).
func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, session_id, medication_name, first_dose_minutes, interval_hours, next_dose_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rem.ID, rem.SessionID, rem.MedicationName, int(rem.FirstDose), rem.IntervalHours, int(rem.NextDose), rem.CreatedAt)
	return err
}

func (r *RemindersRepo) ListBySession(ctx context.Context, sessionID string) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, medication_name, first_dose_minutes, interval_hours, next_dose_minutes, created_at
		FROM reminders
		WHERE session_id = $1
		ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		var rem reminders.Reminder
		var first, next int
		if err := rows.Scan(&rem.ID, &rem.SessionID, &rem.MedicationName, &first, &rem.IntervalHours, &next, &rem.CreatedAt); err != nil {
			return nil, err
		}
		rem.FirstDose = reminders.TimeOfDay(first)
		rem.NextDose = reminders.TimeOfDay(next)
		out = append(out, rem)
	}
	return out, rows.Err()
}
