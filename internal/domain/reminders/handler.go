package reminders

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
	r.Route("/reminders", func(rr chi.Router) {
		rr.Post("/", setReminderHandler(svc))
		rr.Get("/", listRemindersHandler(svc))
	})
}

type setReminderRequest struct {
	MedicationName string `json:"medication_name"`
	FirstDose      string `json:"first_dose"` // HH:MM
	IntervalHours  int    `json:"interval_hours"`
}

type reminderResponse struct {
	ID             string    `json:"id"`
	MedicationName string    `json:"medication_name"`
	FirstDose      string    `json:"first_dose"`
	IntervalHours  int       `json:"interval_hours"`
	NextDose       string    `json:"next_dose"`
	CreatedAt      time.Time `json:"created_at"`
}

func setReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.SessionID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		firstDose, err := ParseTimeOfDay(req.FirstDose)
		if err != nil {
			http.Error(w, "first_dose must be HH:MM", http.StatusBadRequest)
			return
		}

		rem, err := svc.Set(r.Context(), claims.SessionID, SetInput{
			MedicationName: req.MedicationName,
			FirstDose:      firstDose,
			IntervalHours:  req.IntervalHours,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotInInventory):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toReminderResponse(rem))
	}
}

func listRemindersHandler(svc *Service) http.HandlerFunc {
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

		out := make([]reminderResponse, 0, len(items))
		for _, rem := range items {
			out = append(out, toReminderResponse(rem))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toReminderResponse(rem Reminder) reminderResponse {
	return reminderResponse{
		ID:             rem.ID,
		MedicationName: rem.MedicationName,
		FirstDose:      rem.FirstDose.String(),
		IntervalHours:  rem.IntervalHours,
		NextDose:       rem.NextDose.String(),
		CreatedAt:      rem.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
