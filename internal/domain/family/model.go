package family

import "time"

// MaxMembers es el tope duro del plan familiar por sesión.
const MaxMembers = 5

// Member es un dependiente del plan familiar.
// La identidad ante la UI es POSICIONAL: borrar corre los índices
// siguientes hacia abajo, la UI re-keyea por posición en cada render.
type Member struct {
	ID        string
	SessionID string

	Name         string
	Age          int // >= 0
	Relationship string

	CreatedAt time.Time
}
