package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido registrado en el checkout. Se inserta una
// sola vez y es inmutable después.
type Order struct {
	ID            string
	CustomerEmail string
	SellerEmail   string
	PlantID       string
	PlantName     string
	Quantity      int
	Price         decimal.Decimal // total pagado por la línea
	Address       string
	Status        string // pending, delivered, ...
	CreatedAt     time.Time
}
