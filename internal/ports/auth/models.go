package auth

import "strings"

// Role define el nivel de acceso de una sesión.
// anonymous = tier gratuito (scanning + management).
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RolePrime     Role = "prime"
	RoleElite     Role = "elite"
)

// CanOrder indica si el rol puede usar Delivery (prime o superior).
func (r Role) CanOrder() bool {
	return r == RolePrime || r == RoleElite
}

// CanFamilyPlan indica si el rol puede usar Family Plan (solo elite).
func (r Role) CanFamilyPlan() bool {
	return r == RoleElite
}

// ParseRole normaliza un rol textual (case-insensitive);
// cualquier valor desconocido cae a anonymous.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePrime:
		return RolePrime
	case RoleElite:
		return RoleElite
	default:
		return RoleAnonymous
	}
}

// Claims representa la información asociada a un token de sesión.
type Claims struct {
	SessionID string
	Username  string
	Role      Role
}
