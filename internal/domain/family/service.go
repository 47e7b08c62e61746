package family

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrCapacity        = errors.New("family plan is full")
	ErrIndexOutOfRange = errors.New("member index out of range")
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
	Name         string
	Age          int
	Relationship string
}

// Add agrega un dependiente. Con 5 miembros falla con ErrCapacity
// y la lista queda exactamente como estaba.
func (s *Service) Add(ctx context.Context, sessionID string, in AddInput) (Member, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Member{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Member{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Member{}, ErrInvalidInput
	}

	current, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return Member{}, err
	}
	if len(current) >= MaxMembers {
		return Member{}, ErrCapacity
	}

	m := Member{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		Name:         strings.TrimSpace(in.Name),
		Age:          in.Age,
		Relationship: strings.TrimSpace(in.Relationship),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Append(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Member, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID)
}

// Remove borra por posición. [A,B,C] remove(1) => [A,C];
// un remove(1) posterior borra a C.
func (s *Service) Remove(ctx context.Context, sessionID string, index int) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidInput
	}

	current, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(current) {
		return ErrIndexOutOfRange
	}

	return s.repo.RemoveAt(ctx, sessionID, index)
}
