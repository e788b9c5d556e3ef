package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada del registro de un pedido en el checkout.
type CreateOrderRequest struct {
	CustomerEmail string          `json:"customer_email" validate:"required,email"`
	SellerEmail   string          `json:"seller_email" validate:"required,email"`
	PlantID       string          `json:"plant_id" validate:"required"`
	PlantName     string          `json:"plant_name" validate:"omitempty,max=200"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Address       string          `json:"address" validate:"omitempty,max=500"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string          `json:"id"`
	CustomerEmail string          `json:"customer_email"`
	SellerEmail   string          `json:"seller_email"`
	PlantID       string          `json:"plant_id"`
	PlantName     string          `json:"plant_name,omitempty"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Address       string          `json:"address,omitempty"`
	Status        string          `json:"status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
