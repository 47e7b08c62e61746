package reminders

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadTimeOfDay = errors.New("time of day must be HH:MM")

// TimeOfDay es una hora de reloj (minutos desde medianoche), sin fecha
// ni zona. La aritmética de dosis siempre envuelve en 24h.
type TimeOfDay int

const minutesPerDay = 24 * 60

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, errBadTimeOfDay
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, errBadTimeOfDay
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, errBadTimeOfDay
	}

	return TimeOfDay(h*60 + m), nil
}

// AddHours suma horas envolviendo pasada la medianoche (22:00 + 4h = 02:00).
func (t TimeOfDay) AddHours(hours int) TimeOfDay {
	v := (int(t) + hours*60) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return TimeOfDay(v)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
