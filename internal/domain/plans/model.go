package plans

import "med-tracker/internal/ports/auth"

// Plan es una oferta premium. Listado estático, sin catálogo externo.
type Plan struct {
	ID       string
	Name     string
	PriceUSD int
	Features []string

	// Rol que otorga la compra.
	Grants auth.Role
}

func availablePlans() []Plan {
	return []Plan{
		{
			ID:       "prime",
			Name:     "Prime",
			PriceUSD: 10,
			Features: []string{
				"Access to basic AI tools",
				"Limited cloud storage",
				"Standard customer support",
				"Monthly updates",
			},
			Grants: auth.RolePrime,
		},
		{
			ID:       "elite",
			Name:     "Elite",
			PriceUSD: 20,
			Features: []string{
				"Full access to all AI tools",
				"Unlimited cloud storage",
				"Priority customer support",
				"Weekly exclusive updates",
				"Advanced analytics dashboard",
			},
			Grants: auth.RoleElite,
		},
	}
}
