package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-tracker/internal/domain/inventory"
)

type inventoryRepo struct {
	mu        sync.RWMutex
	bySession map[string][]inventory.Item
}

func NewInventoryRepo() inventory.Repository {
	return &inventoryRepo{
		bySession: make(map[string][]inventory.Item),
	}
}

func (r *inventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("item id required")
	}
	if strings.TrimSpace(it.SessionID) == "" {
		return errors.New("session id required")
	}

	r.bySession[it.SessionID] = append(r.bySession[it.SessionID], it)
	return nil
}

func (r *inventoryRepo) ListBySession(ctx context.Context, sessionID string) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySession[sessionID]
	out := make([]inventory.Item, len(items))
	copy(out, items)
	return out, nil
}
