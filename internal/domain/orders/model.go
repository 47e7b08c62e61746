package orders

import "time"

// Order es una compra con delivery. Historial append-only por sesión.
type Order struct {
	ID        string
	SessionID string

	OrderedAt time.Time

	Item     string
	Quantity int // >= 1

	CostPerUnit  int // sorteado una vez por orden, en [5,50]
	DeliveryCost int // constante 5
	TotalCost    int // Quantity*CostPerUnit + DeliveryCost
}
