package family

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Family Plan es superficie elite-only: el gate de rol vive acá,
// en el borde HTTP, no en los services.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/family", func(fr chi.Router) {
		fr.Post("/", addMemberHandler(svc))
		fr.Get("/", listMembersHandler(svc))
		fr.Delete("/{index}", removeMemberHandler(svc))
	})
}

type addMemberRequest struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Relationship string `json:"relationship"`
}

type memberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}

func requireElite(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.SessionID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if !claims.Role.CanFamilyPlan() {
		http.Error(w, "family plan requires elite", http.StatusForbidden)
		return "", false
	}
	return claims.SessionID, true
}

func addMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireElite(w, r)
		if !ok {
			return
		}

		var req addMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Add(r.Context(), sessionID, AddInput{
			Name:         req.Name,
			Age:          req.Age,
			Relationship: req.Relationship,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrCapacity):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toMemberResponse(m))
	}
}

func listMembersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireElite(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]memberResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMemberResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func removeMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireElite(w, r)
		if !ok {
			return
		}

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "index must be an integer", http.StatusBadRequest)
			return
		}

		if err := svc.Remove(r.Context(), sessionID, index); err != nil {
			switch {
			case errors.Is(err, ErrIndexOutOfRange):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toMemberResponse(m Member) memberResponse {
	return memberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Age:          m.Age,
		Relationship: m.Relationship,
		CreatedAt:    m.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
