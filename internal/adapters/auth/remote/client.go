// Package remote verifica sesiones contra un IAM externo por HTTP.
// Queda listo para instanciarse desde main cuando exista el servicio;
// el router no lo integra automáticamente.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"med-tracker/internal/platform/httpclient"
	"med-tracker/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("remote auth client not configured")
	ErrUnauthorized  = errors.New("remote auth unauthorized")
	ErrUpstream      = errors.New("remote auth upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Header donde viaja la API key; default "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: header,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

// VerifySession consulta el IAM por un token y trae claims.
func (c *Client) VerifySession(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		SessionID string `json:"session_id"`
		Username  string `json:"username"`
		Role      string `json:"role"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/sessions/verify",
		map[string]string{
			c.apiKeyHeader:  c.apiKey,
			"Authorization": "Bearer " + token,
		},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.SessionID = strings.TrimSpace(out.SessionID)
	if out.SessionID == "" {
		return auth.Claims{}, errors.New("remote auth response missing session_id")
	}

	return auth.Claims{
		SessionID: out.SessionID,
		Username:  strings.TrimSpace(out.Username),
		Role:      auth.ParseRole(out.Role),
	}, nil
}
