package auth

import "context"

// SessionVerifier resuelve un token de sesión y devuelve claims o error.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Authenticator valida credenciales y devuelve el rol asociado.
// El core nunca ve credenciales; solo este colaborador las toca.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (Role, error)
}
