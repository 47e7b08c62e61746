package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-tracker/internal/domain/orders"
)

type ordersRepo struct {
	mu        sync.RWMutex
	bySession map[string][]orders.Order
}

func NewOrdersRepo() orders.Repository {
	return &ordersRepo{
		bySession: make(map[string][]orders.Order),
	}
}

func (r *ordersRepo) Create(ctx context.Context, o orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("order id required")
	}
	if strings.TrimSpace(o.SessionID) == "" {
		return errors.New("session id required")
	}

	r.bySession[o.SessionID] = append(r.bySession[o.SessionID], o)
	return nil
}

func (r *ordersRepo) ListBySession(ctx context.Context, sessionID string) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySession[sessionID]
	out := make([]orders.Order, len(items))
	copy(out, items)
	return out, nil
}
