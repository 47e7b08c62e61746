package selection

import "context"

type Repository interface {
	Set(ctx context.Context, sel Selection) error
	Get(ctx context.Context, sessionID string) (Selection, error)
}
