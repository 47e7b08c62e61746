package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-tracker/internal/domain/selection"
	"med-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Delivery es superficie prime+.
func RegisterRoutes(r chi.Router, svc *Service, selSvc *selection.Service) {
	r.Route("/orders", func(or chi.Router) {
		or.Post("/", placeOrderHandler(svc, selSvc))
		or.Get("/", listOrdersHandler(svc))
	})
}

type placeOrderRequest struct {
	// Item opcional: vacío => se ordena el medicamento seleccionado.
	Item            string `json:"item"`
	Quantity        int    `json:"quantity"`
	HasPrescription bool   `json:"has_prescription"`
}

type orderResponse struct {
	ID           string    `json:"id"`
	OrderedAt    time.Time `json:"ordered_at"`
	Item         string    `json:"item"`
	Quantity     int       `json:"quantity"`
	CostPerUnit  int       `json:"cost_per_unit"`
	DeliveryCost int       `json:"delivery_cost"`
	TotalCost    int       `json:"total_cost"`
}

func requireOrderRole(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.SessionID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if !claims.Role.CanOrder() {
		http.Error(w, "delivery requires prime or elite", http.StatusForbidden)
		return "", false
	}
	return claims.SessionID, true
}

func placeOrderHandler(svc *Service, selSvc *selection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireOrderRole(w, r)
		if !ok {
			return
		}

		var req placeOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		item := strings.TrimSpace(req.Item)
		if item == "" {
			sel, err := selSvc.Current(r.Context(), sessionID)
			if err != nil {
				http.Error(w, "no item given and no medication selected", http.StatusBadRequest)
				return
			}
			item = sel.Record.Name
		}

		o, err := svc.Place(r.Context(), sessionID, PlaceInput{
			Item:            item,
			Quantity:        req.Quantity,
			HasPrescription: req.HasPrescription,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNoPrescription):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toOrderResponse(o))
	}
}

func listOrdersHandler(svc *Service) http.HandlerFunc {
	// Historial de órdenes (lo consume también el export de recibos).
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireOrderRole(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]orderResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOrderResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toOrderResponse(o Order) orderResponse {
	return orderResponse{
		ID:           o.ID,
		OrderedAt:    o.OrderedAt,
		Item:         o.Item,
		Quantity:     o.Quantity,
		CostPerUnit:  o.CostPerUnit,
		DeliveryCost: o.DeliveryCost,
		TotalCost:    o.TotalCost,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
