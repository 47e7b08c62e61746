package static

import (
	"os"
	"strings"

	"med-tracker/internal/ports/auth"
)

// SeedFromEnv registra usuarios desde DEV_USERS (formato
// "user:pass:role,user:pass:role"). Pensado para dev/demo; en prod se
// usa el verifier remoto y esta lista queda vacía.
// Devuelve cuántos usuarios registró.
func (s *Store) SeedFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("DEV_USERS"))
	if raw == "" {
		return 0
	}

	n := 0
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 {
			continue
		}
		if err := s.Register(parts[0], parts[1], auth.ParseRole(parts[2])); err != nil {
			continue
		}
		n++
	}
	return n
}
