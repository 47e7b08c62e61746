package catalog

import "context"

type DetectionStatus string

const (
	DetectionNotImplemented DetectionStatus = "not_implemented"
	DetectionIdentified     DetectionStatus = "identified"
	DetectionUnrecognized   DetectionStatus = "unrecognized"
)

// DetectionResult es el resultado explícito de un escaneo: un scan sin
// modelo dice not_implemented y uno con modelo que no reconoce nada
// dice unrecognized. Nunca se fabrica un match.
type DetectionResult struct {
	Status DetectionStatus
	Record *MedicationRecord
}

// Detector identifica un medicamento a partir de un frame de cámara.
// ok=false significa "no reconocí nada" (distinto de error).
type Detector interface {
	Detect(ctx context.Context, image []byte) (name string, ok bool, err error)
}

// Scan corre el detector (si hay) y resuelve el nombre contra el catálogo.
func (s *Service) Scan(ctx context.Context, image []byte) (DetectionResult, error) {
	if s.detector == nil {
		return DetectionResult{Status: DetectionNotImplemented}, nil
	}

	name, ok, err := s.detector.Detect(ctx, image)
	if err != nil {
		return DetectionResult{}, err
	}
	if !ok {
		return DetectionResult{Status: DetectionUnrecognized}, nil
	}

	rec, err := s.Get(name)
	if err != nil {
		// el detector devolvió un nombre fuera de catálogo
		return DetectionResult{Status: DetectionUnrecognized}, nil
	}

	return DetectionResult{Status: DetectionIdentified, Record: &rec}, nil
}
