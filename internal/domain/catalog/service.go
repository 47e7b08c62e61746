package catalog

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("medication not found")
)

// Service expone búsqueda sobre el catálogo ya mergeado.
// El slice de records no se muta después de NewService.
type Service struct {
	records  []MedicationRecord
	detector Detector
}

func NewService(records []MedicationRecord) *Service {
	return &Service{records: records}
}

// WithDetector inyecta un detector para Scan. Sin detector,
// Scan reporta not_implemented (nunca inventa un match).
func (s *Service) WithDetector(d Detector) *Service {
	s.detector = d
	return s
}

// Search filtra por substring case-insensitive sobre el nombre.
// Query vacía => resultado vacío, nunca el catálogo completo.
func (s *Service) Search(query string) []MedicationRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []MedicationRecord{}
	}

	out := make([]MedicationRecord, 0)
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			out = append(out, rec)
		}
	}
	return out
}

// Get busca por nombre exacto (case-insensitive).
func (s *Service) Get(name string) (MedicationRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MedicationRecord{}, ErrNotFound
	}
	for _, rec := range s.records {
		if strings.EqualFold(rec.Name, name) {
			return rec, nil
		}
	}
	return MedicationRecord{}, ErrNotFound
}

// Len devuelve la cantidad de records cargados (para logging al boot).
func (s *Service) Len() int {
	return len(s.records)
}
