package orders

import (
	"math/rand"
	"time"
)

const (
	// Rango del costo unitario sintético, inclusive en ambos extremos.
	MinUnitCost = 5
	MaxUnitCost = 50

	// DeliveryCost es plano por orden.
	DeliveryCost = 5
)

// DrawFunc devuelve un entero uniforme en [min, max].
// Se inyecta para que los tests fijen el precio.
type DrawFunc func(min, max int) int

// NewSeededDraw crea un draw determinista a partir de un seed.
func NewSeededDraw(seed int64) DrawFunc {
	rng := rand.New(rand.NewSource(seed))
	return func(min, max int) int {
		return min + rng.Intn(max-min+1)
	}
}

func defaultDraw() DrawFunc {
	return NewSeededDraw(time.Now().UnixNano())
}

type Quote struct {
	CostPerUnit  int
	DeliveryCost int
	TotalCost    int
}

// price sortea el costo unitario UNA vez por orden (no por unidad).
func price(quantity int, draw DrawFunc) Quote {
	unit := draw(MinUnitCost, MaxUnitCost)
	return Quote{
		CostPerUnit:  unit,
		DeliveryCost: DeliveryCost,
		TotalCost:    quantity*unit + DeliveryCost,
	}
}
