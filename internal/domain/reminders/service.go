package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotInInventory = errors.New("medication not in inventory")
)

// InventoryChecker responde si la sesión tiene el medicamento.
// Lo implementa inventory.Service; interface acá para no importar el módulo.
type InventoryChecker interface {
	Has(ctx context.Context, sessionID, name string) (bool, error)
}

type Service struct {
	repo      Repository
	inventory InventoryChecker
	now       func() time.Time
}

func NewService(repo Repository, inventory InventoryChecker) *Service {
	return &Service{
		repo:      repo,
		inventory: inventory,
		now:       time.Now,
	}
}

type SetInput struct {
	MedicationName string
	FirstDose      TimeOfDay
	IntervalHours  int
}

// Set crea un reminder. Falla si el intervalo es menor a 4h o si el
// medicamento no está en el inventario de la sesión. Append-only.
func (s *Service) Set(ctx context.Context, sessionID string, in SetInput) (Reminder, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Reminder{}, ErrInvalidInput
	}

	name := strings.TrimSpace(in.MedicationName)
	if name == "" {
		return Reminder{}, ErrInvalidInput
	}
	if in.IntervalHours < MinIntervalHours {
		return Reminder{}, ErrInvalidInput
	}

	has, err := s.inventory.Has(ctx, sessionID, name)
	if err != nil {
		return Reminder{}, err
	}
	if !has {
		return Reminder{}, ErrNotInInventory
	}

	r := Reminder{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		MedicationName: name,
		FirstDose:      in.FirstDose,
		IntervalHours:  in.IntervalHours,
		NextDose:       in.FirstDose.AddHours(in.IntervalHours),
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Reminder, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID)
}
