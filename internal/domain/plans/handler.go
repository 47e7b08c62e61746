package plans

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/plans", func(pr chi.Router) {
		pr.Get("/", listPlansHandler(svc))
		pr.Post("/{planID}/purchase", purchaseHandler(svc))
	})
}

type planResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	PriceUSD int      `json:"price_usd"`
	Features []string `json:"features"`
}

func listPlansHandler(svc *Service) http.HandlerFunc {
	// El listado es público: la página de premium se ve sin login.
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.List()
		out := make([]planResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPlanResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func purchaseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.Purchase(r.Context(), claims.SessionID, claims.Role, chi.URLParam(r, "planID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "plan not found", http.StatusNotFound)
			case errors.Is(err, ErrBadState):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrUnavailable):
				http.Error(w, err.Error(), http.StatusNotImplemented)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPlanResponse(p))
	}
}

func toPlanResponse(p Plan) planResponse {
	return planResponse{
		ID:       p.ID,
		Name:     p.Name,
		PriceUSD: p.PriceUSD,
		Features: p.Features,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
