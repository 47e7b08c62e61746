package selection

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"med-tracker/internal/domain/catalog"
	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catalogSvc *catalog.Service) {
	r.Get("/me/selection", currentHandler(svc))
	r.Put("/me/selection", setHandler(svc, catalogSvc))
}

type setSelectionRequest struct {
	Name string `json:"name"`
}

type selectionResponse struct {
	Name             string    `json:"name"`
	TherapeuticClass string    `json:"therapeutic_class,omitempty"`
	Uses             []string  `json:"uses"`
	SideEffects      []string  `json:"side_effects"`
	SelectedAt       time.Time `json:"selected_at"`
}

func currentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sel, err := svc.Current(r.Context(), claims.SessionID)
		if err != nil {
			http.Error(w, "no medication selected", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toSelectionResponse(sel))
	}
}

func setHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setSelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := catalogSvc.Get(req.Name)
		if err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		if err := svc.Record(r.Context(), claims.SessionID, rec); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		sel, err := svc.Current(r.Context(), claims.SessionID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSelectionResponse(sel))
	}
}

func toSelectionResponse(sel Selection) selectionResponse {
	return selectionResponse{
		Name:             sel.Record.Name,
		TherapeuticClass: sel.Record.TherapeuticClass,
		Uses:             sel.Record.Uses,
		SideEffects:      sel.Record.SideEffects,
		SelectedAt:       sel.SelectedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
