package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"med-tracker/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.SessionVerifier sobre el cliente remoto.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifySession(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("remote verify failed: %w", err)
	}
	return claims, nil
}
