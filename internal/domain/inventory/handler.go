package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/inventory", func(ir chi.Router) {
		ir.Post("/", addItemHandler(svc))
		ir.Get("/", listItemsHandler(svc))
	})
}

type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func addItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		it, err := svc.Add(r.Context(), claims.SessionID, AddInput{
			Name:     req.Name,
			Quantity: req.Quantity,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toItemResponse(it))
	}
}

func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), claims.SessionID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		CreatedAt: it.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
