package reminders

import "time"

// MinIntervalHours es el intervalo mínimo entre dosis.
const MinIntervalHours = 4

// Reminder es un cálculo de próxima dosis, no un timer activo:
// nadie dispara notificaciones, solo se deriva NextDose.
type Reminder struct {
	ID        string
	SessionID string

	MedicationName string
	FirstDose      TimeOfDay
	IntervalHours  int       // >= MinIntervalHours
	NextDose       TimeOfDay // derivado: FirstDose + IntervalHours, envuelto

	CreatedAt time.Time
}
