package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plant representa una publicación del marketplace. La cantidad se muta
// únicamente vía incrementos/decrementos atómicos ligados a pedidos;
// las plantas no se eliminan.
type Plant struct {
	ID          string
	Name        string
	Category    string
	Description string
	Image       string
	Price       decimal.Decimal // precio unitario en USD
	Quantity    int
	SellerEmail string
	CreatedAt   time.Time
}
