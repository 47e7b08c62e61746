package static

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta login/logout/sesión anónima cuando el Store es
// quien emite sesiones (con verifier remoto estos endpoints no se montan).
func RegisterRoutes(r chi.Router, store *Store) {
	r.Post("/session", startSessionHandler(store))
	r.Post("/login", loginHandler(store))
	r.Post("/logout", logoutHandler(store))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

func startSessionHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, claims := store.StartAnonymous(r.Context())
		writeJSON(w, http.StatusCreated, sessionResponse{
			Token: token,
			Role:  string(claims.Role),
		})
	}
}

func loginHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		token, claims, err := store.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			Token:    token,
			Username: claims.Username,
			Role:     string(claims.Role),
		})
	}
}

func logoutHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		store.Logout(r.Context(), token)
		w.WriteHeader(http.StatusNoContent)
	}
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
