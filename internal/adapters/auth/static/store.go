// Package static implementa autenticación con un mapa de credenciales
// hasheadas (bcrypt). Pensado para dev y despliegues chicos; el core
// solo ve los interfaces de ports/auth.
package static

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-tracker/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserExists         = errors.New("user already exists")
)

type credential struct {
	hash []byte
	role auth.Role
}

// Store guarda credenciales y sesiones vivas en memoria.
// El token de sesión ES el session id (uuid v4).
type Store struct {
	mu       sync.RWMutex
	creds    map[string]credential
	sessions map[string]auth.Claims
}

func New() *Store {
	return &Store{
		creds:    make(map[string]credential),
		sessions: make(map[string]auth.Claims),
	}
}

// Register da de alta un usuario con su rol. El password se hashea;
// nunca se guarda en claro.
func (s *Store) Register(username, password string, role auth.Role) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("username and password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.creds[username]; exists {
		return ErrUserExists
	}
	s.creds[username] = credential{hash: hash, role: role}
	return nil
}

// Authenticate implementa auth.Authenticator.
func (s *Store) Authenticate(ctx context.Context, username, password string) (auth.Role, error) {
	s.mu.RLock()
	c, ok := s.creds[strings.TrimSpace(username)]
	s.mu.RUnlock()

	if !ok {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(c.hash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return c.role, nil
}

// Login autentica y abre una sesión nueva. Devuelve el token.
func (s *Store) Login(ctx context.Context, username, password string) (string, auth.Claims, error) {
	role, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", auth.Claims{}, err
	}

	token := uuid.NewString()
	claims := auth.Claims{
		SessionID: token,
		Username:  strings.TrimSpace(username),
		Role:      role,
	}

	s.mu.Lock()
	s.sessions[token] = claims
	s.mu.Unlock()

	return token, claims, nil
}

// StartAnonymous abre una sesión sin credenciales (tier gratuito).
func (s *Store) StartAnonymous(ctx context.Context) (string, auth.Claims) {
	token := uuid.NewString()
	claims := auth.Claims{
		SessionID: token,
		Role:      auth.RoleAnonymous,
	}

	s.mu.Lock()
	s.sessions[token] = claims
	s.mu.Unlock()

	return token, claims
}

// Verify implementa auth.SessionVerifier.
func (s *Store) Verify(ctx context.Context, token string) (auth.Claims, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claims, ok := s.sessions[strings.TrimSpace(token)]
	if !ok {
		return auth.Claims{}, ErrSessionNotFound
	}
	return claims, nil
}

// Logout invalida el token. Idempotente.
func (s *Store) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, strings.TrimSpace(token))
	s.mu.Unlock()
}

// Upgrade sube el rol de una sesión viva (compra de plan).
// Implementa plans.RoleUpgrader.
func (s *Store) Upgrade(ctx context.Context, sessionID string, role auth.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	claims.Role = role
	s.sessions[sessionID] = claims
	return nil
}
