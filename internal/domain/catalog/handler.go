package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// SelectionRecorder persiste el medicamento "activo" de la sesión.
// Lo implementa selection.Service; interface acá para no importar el módulo.
type SelectionRecorder interface {
	Record(ctx context.Context, sessionID string, rec MedicationRecord) error
}

func RegisterRoutes(r chi.Router, svc *Service, sel SelectionRecorder) {
	r.Route("/catalog", func(cr chi.Router) {
		cr.Get("/search", searchHandler(svc, sel))
		cr.Get("/{name}", getHandler(svc))
	})

	// Scanning: corre el detector (si hay) sobre el frame subido.
	r.Post("/scan", scanHandler(svc, sel))
}

type medicationResponse struct {
	Name             string   `json:"name"`
	TherapeuticClass string   `json:"therapeutic_class,omitempty"`
	Uses             []string `json:"uses"`
	SideEffects      []string `json:"side_effects"`
}

type detectionResponse struct {
	Status string              `json:"status"`
	Record *medicationResponse `json:"record,omitempty"`
}

func searchHandler(svc *Service, sel SelectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		results := svc.Search(r.URL.Query().Get("q"))

		// La sesión "selecciona" el primer match (lo leen Management/Delivery).
		if len(results) > 0 {
			if err := sel.Record(r.Context(), claims.SessionID, results[0]); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		out := make([]medicationResponse, 0, len(results))
		for _, rec := range results {
			out = append(out, toMedicationResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rec, err := svc.Get(chi.URLParam(r, "name"))
		if err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(rec))
	}
}

func scanHandler(svc *Service, sel SelectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// frame crudo, acotado a 8MB
		image, err := io.ReadAll(io.LimitReader(r.Body, 8<<20))
		if err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		res, err := svc.Scan(r.Context(), image)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := detectionResponse{Status: string(res.Status)}
		if res.Record != nil {
			rec := toMedicationResponse(*res.Record)
			out.Record = &rec

			if err := sel.Record(r.Context(), claims.SessionID, *res.Record); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toMedicationResponse(rec MedicationRecord) medicationResponse {
	return medicationResponse{
		Name:             rec.Name,
		TherapeuticClass: rec.TherapeuticClass,
		Uses:             rec.Uses,
		SideEffects:      rec.SideEffects,
	}
}

// writeJSON se duplica intencionalmente por módulo (igual que en el
// resto de handlers) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
