package selection

import (
	"time"

	"med-tracker/internal/domain/catalog"
)

// Selection es el medicamento "activo" de la sesión: el último buscado
// o escaneado. Cada búsqueda/scan lo sobreescribe; nunca se borra.
type Selection struct {
	SessionID  string
	Record     catalog.MedicationRecord
	SelectedAt time.Time
}
