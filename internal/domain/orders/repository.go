package orders

import "context"

type Repository interface {
	Create(ctx context.Context, o Order) error
	ListBySession(ctx context.Context, sessionID string) ([]Order, error)
}
