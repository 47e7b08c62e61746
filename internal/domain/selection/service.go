package selection

import (
	"context"
	"errors"
	"strings"
	"time"

	"med-tracker/internal/domain/catalog"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("no medication selected")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record sobreescribe la selección de la sesión.
// Implementa catalog.SelectionRecorder.
func (s *Service) Record(ctx context.Context, sessionID string, rec catalog.MedicationRecord) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(rec.Name) == "" {
		return ErrInvalidInput
	}

	return s.repo.Set(ctx, Selection{
		SessionID:  sessionID,
		Record:     rec,
		SelectedAt: s.now(),
	})
}

// Current devuelve la selección vigente o ErrNotFound.
func (s *Service) Current(ctx context.Context, sessionID string) (Selection, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Selection{}, ErrInvalidInput
	}
	sel, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return Selection{}, ErrNotFound
	}
	return sel, nil
}
