package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-tracker/internal/domain/reminders"
)

type remindersRepo struct {
	mu        sync.RWMutex
	bySession map[string][]reminders.Reminder
}

func NewRemindersRepo() reminders.Repository {
	return &remindersRepo{
		bySession: make(map[string][]reminders.Reminder),
	}
}

func (r *remindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rem.ID) == "" {
		return errors.New("reminder id required")
	}
	if strings.TrimSpace(rem.SessionID) == "" {
		return errors.New("session id required")
	}

	r.bySession[rem.SessionID] = append(r.bySession[rem.SessionID], rem)
	return nil
}

func (r *remindersRepo) ListBySession(ctx context.Context, sessionID string) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySession[sessionID]
	out := make([]reminders.Reminder, len(items))
	copy(out, items)
	return out, nil
}
