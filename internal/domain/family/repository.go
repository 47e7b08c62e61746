package family

import "context"

type Repository interface {
	// Append agrega al final de la lista de la sesión.
	Append(ctx context.Context, m Member) error

	// ListBySession devuelve la lista en orden de inserción.
	ListBySession(ctx context.Context, sessionID string) ([]Member, error)

	// RemoveAt borra por posición; los siguientes bajan un lugar.
	RemoveAt(ctx context.Context, sessionID string, index int) error
}
