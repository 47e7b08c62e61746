package plans

import (
	"context"
	"errors"
	"strings"

	"med-tracker/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("plan not found")
	ErrBadState     = errors.New("cannot downgrade plan")

	// ErrUnavailable: las sesiones las administra un IAM externo y acá
	// no hay quien suba el rol; la compra no está soportada en este modo.
	ErrUnavailable = errors.New("plan purchase not available")
)

// RoleUpgrader sube el rol de una sesión viva. Lo implementa el
// adapter de auth; el core no toca tokens ni credenciales.
type RoleUpgrader interface {
	Upgrade(ctx context.Context, sessionID string, role auth.Role) error
}

type Service struct {
	plans    []Plan
	upgrader RoleUpgrader
}

func NewService(upgrader RoleUpgrader) *Service {
	return &Service{
		plans:    availablePlans(),
		upgrader: upgrader,
	}
}

func (s *Service) List() []Plan {
	out := make([]Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

func (s *Service) Get(planID string) (Plan, error) {
	planID = strings.ToLower(strings.TrimSpace(planID))
	for _, p := range s.plans {
		if p.ID == planID {
			return p, nil
		}
	}
	return Plan{}, ErrNotFound
}

// Purchase sube la sesión al rol del plan.
// Re-comprar el plan vigente es idempotente; elite -> prime se rechaza.
func (s *Service) Purchase(ctx context.Context, sessionID string, currentRole auth.Role, planID string) (Plan, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Plan{}, ErrInvalidInput
	}

	p, err := s.Get(planID)
	if err != nil {
		return Plan{}, err
	}

	if currentRole == p.Grants {
		return p, nil
	}
	if currentRole == auth.RoleElite && p.Grants == auth.RolePrime {
		return Plan{}, ErrBadState
	}

	if s.upgrader == nil {
		return Plan{}, ErrUnavailable
	}
	if err := s.upgrader.Upgrade(ctx, sessionID, p.Grants); err != nil {
		return Plan{}, err
	}
	return p, nil
}
