package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-tracker/internal/domain/family"
)

type familyRepo struct {
	mu        sync.RWMutex
	bySession map[string][]family.Member
}

func NewFamilyRepo() family.Repository {
	return &familyRepo{
		bySession: make(map[string][]family.Member),
	}
}

func (r *familyRepo) Append(ctx context.Context, m family.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("member id required")
	}
	if strings.TrimSpace(m.SessionID) == "" {
		return errors.New("session id required")
	}

	r.bySession[m.SessionID] = append(r.bySession[m.SessionID], m)
	return nil
}

func (r *familyRepo) ListBySession(ctx context.Context, sessionID string) ([]family.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySession[sessionID]
	out := make([]family.Member, len(items))
	copy(out, items)
	return out, nil
}

func (r *familyRepo) RemoveAt(ctx context.Context, sessionID string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.bySession[sessionID]
	if index < 0 || index >= len(items) {
		return ErrNotFound
	}

	// corrimiento posicional: los siguientes bajan un lugar
	r.bySession[sessionID] = append(items[:index], items[index+1:]...)
	return nil
}
