package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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

type AddInput struct {
	Name     string
	Quantity int
}

// Add agrega un item al inventario de la sesión.
// No hay dedup por nombre ni operación de update/delete en alcance.
func (s *Service) Add(ctx context.Context, sessionID string, in AddInput) (Item, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Item{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Item{}, ErrInvalidInput
	}
	if in.Quantity < 0 {
		return Item{}, ErrInvalidInput
	}

	it := Item{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Name:      strings.TrimSpace(in.Name),
		Quantity:  in.Quantity,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Item, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID)
}
