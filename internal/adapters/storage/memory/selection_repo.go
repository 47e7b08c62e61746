package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-tracker/internal/domain/selection"
)

type selectionRepo struct {
	mu        sync.RWMutex
	bySession map[string]selection.Selection
}

func NewSelectionRepo() selection.Repository {
	return &selectionRepo{
		bySession: make(map[string]selection.Selection),
	}
}

func (r *selectionRepo) Set(ctx context.Context, sel selection.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(sel.SessionID) == "" {
		return errors.New("session id required")
	}

	r.bySession[sel.SessionID] = sel
	return nil
}

func (r *selectionRepo) Get(ctx context.Context, sessionID string) (selection.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sel, ok := r.bySession[sessionID]
	if !ok {
		return selection.Selection{}, ErrNotFound
	}
	return sel, nil
}
