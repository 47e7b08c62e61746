package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNoPrescription = errors.New("prescription upload required")
)

type Service struct {
	repo Repository
	now  func() time.Time
	draw DrawFunc
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		draw: defaultDraw(),
	}
}

// WithDraw fija el generador de precios (tests / seed explícito).
func (s *Service) WithDraw(draw DrawFunc) *Service {
	if draw != nil {
		s.draw = draw
	}
	return s
}

type PlaceInput struct {
	Item            string
	Quantity        int
	HasPrescription bool
}

// Place valida, cotiza y agrega la orden al historial.
// Sin prescripción adjunta no se agrega nada.
func (s *Service) Place(ctx context.Context, sessionID string, in PlaceInput) (Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Order{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Item) == "" {
		return Order{}, ErrInvalidInput
	}
	if in.Quantity < 1 {
		return Order{}, ErrInvalidInput
	}
	if !in.HasPrescription {
		return Order{}, ErrNoPrescription
	}

	q := price(in.Quantity, s.draw)

	o := Order{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		OrderedAt:    s.now(),
		Item:         strings.TrimSpace(in.Item),
		Quantity:     in.Quantity,
		CostPerUnit:  q.CostPerUnit,
		DeliveryCost: q.DeliveryCost,
		TotalCost:    q.TotalCost,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// List devuelve el historial de órdenes de la sesión.
func (s *Service) List(ctx context.Context, sessionID string) ([]Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID)
}
