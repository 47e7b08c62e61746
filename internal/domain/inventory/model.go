package inventory

import "time"

// Item es una entrada del inventario de la sesión.
// Lista append-only: se permiten nombres duplicados y NO se mergean.
type Item struct {
	ID        string
	SessionID string

	Name     string
	Quantity int // >= 0

	CreatedAt time.Time
}
