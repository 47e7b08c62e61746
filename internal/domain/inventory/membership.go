package inventory

import (
	"context"
	"strings"
)

// Has responde si la sesión tiene el medicamento en inventario,
// por nombre (case-insensitive, cualquier ocurrencia cuenta).
// Lo usa reminders para validar sin acoplar los módulos por import.
func (s *Service) Has(ctx context.Context, sessionID, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
