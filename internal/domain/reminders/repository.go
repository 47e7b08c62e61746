package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	ListBySession(ctx context.Context, sessionID string) ([]Reminder, error)
}
