package catalog

// MedicationRecord es una fila del catálogo de referencia.
// Inmutable después del load; se comparte entre sesiones sin lock.
type MedicationRecord struct {
	Name             string
	TherapeuticClass string
	Uses             []string
	SideEffects      []string
}
