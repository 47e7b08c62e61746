package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it Item) error
	ListBySession(ctx context.Context, sessionID string) ([]Item, error)
}
